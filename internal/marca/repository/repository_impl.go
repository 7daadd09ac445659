package repository

import (
	"context"

	"github.com/zulem090/animal-style/internal/marca/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) FindAll(ctx context.Context, db *gorm.DB) ([]domain.Marca, error) {
	var items []domain.Marca
	if err := db.WithContext(ctx).Order("id_marca ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) Create(ctx context.Context, db *gorm.DB, marca *domain.Marca) error {
	return db.WithContext(ctx).Create(marca).Error
}

package repository

import (
	"context"

	"github.com/zulem090/animal-style/internal/tipoproducto/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) FindAll(ctx context.Context, db *gorm.DB) ([]domain.TipoProducto, error) {
	var items []domain.TipoProducto
	if err := db.WithContext(ctx).Order("id_tipo_producto ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) Create(ctx context.Context, db *gorm.DB, tipo *domain.TipoProducto) error {
	return db.WithContext(ctx).Create(tipo).Error
}

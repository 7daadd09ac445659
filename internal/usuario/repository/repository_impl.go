package repository

import (
	"context"
	"errors"

	"github.com/zulem090/animal-style/internal/usuario/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id string) (*domain.User, error) {
	var u domain.User
	err := db.WithContext(ctx).Where("id = ?", id).First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *repo) FindByEmail(ctx context.Context, db *gorm.DB, email string) (*domain.User, error) {
	var u domain.User
	err := db.WithContext(ctx).Where("email = ?", email).First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *repo) FindByEmailOrUsuario(ctx context.Context, db *gorm.DB, emailOrUsuario string) ([]domain.User, error) {
	var users []domain.User
	err := db.WithContext(ctx).
		Where("email = ? OR usuario = ?", emailOrUsuario, emailOrUsuario).
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r *repo) Create(ctx context.Context, db *gorm.DB, user *domain.User) error {
	return db.WithContext(ctx).Create(user).Error
}

func (r *repo) UpdatePersonalInfo(ctx context.Context, db *gorm.DB, id string, direccion *string, telefono *int64) error {
	return db.WithContext(ctx).
		Model(&domain.User{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"direccion": direccion,
			"telefono":  telefono,
		}).Error
}

package repository

import (
	"context"
	"errors"

	"github.com/zulem090/animal-style/internal/resena/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) FindPuntuaciones(ctx context.Context, db *gorm.DB, idProducto int64) ([]float64, error) {
	var puntuaciones []float64
	err := db.WithContext(ctx).
		Model(&domain.Resena{}).
		Where("id_producto = ?", idProducto).
		Pluck("puntuacion", &puntuaciones).Error
	if err != nil {
		return nil, err
	}
	return puntuaciones, nil
}

func (r *repo) FindPuntuacionByUser(ctx context.Context, db *gorm.DB, idProducto int64, idUsuario string) (*float64, error) {
	var resena domain.Resena
	err := db.WithContext(ctx).
		Select("puntuacion").
		Where("id_producto = ? AND id_usuario = ?", idProducto, idUsuario).
		First(&resena).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &resena.Puntuacion, nil
}

func (r *repo) CreateMany(ctx context.Context, db *gorm.DB, resenas []domain.Resena) error {
	if len(resenas) == 0 {
		return nil
	}
	return db.WithContext(ctx).Create(&resenas).Error
}

package domain

import (
	"context"

	"gorm.io/gorm"
)

type Service interface {
	GetProductoResenas(ctx context.Context, idProducto int64) (*ResenaDto, error)
	GetPuntuacionByUser(ctx context.Context, idProducto int64, idUsuario string) (*float64, error)
}

type Repository interface {
	FindPuntuaciones(ctx context.Context, db *gorm.DB, idProducto int64) ([]float64, error)
	FindPuntuacionByUser(ctx context.Context, db *gorm.DB, idProducto int64, idUsuario string) (*float64, error)
	CreateMany(ctx context.Context, db *gorm.DB, resenas []Resena) error
}

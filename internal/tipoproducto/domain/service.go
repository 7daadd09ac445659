package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	FindAll(ctx context.Context, db *gorm.DB) ([]TipoProducto, error)
	Create(ctx context.Context, db *gorm.DB, tipo *TipoProducto) error
}

type Service interface {
	GetAll(ctx context.Context) ([]TipoProductoDto, error)
}

package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	FindAll(ctx context.Context, db *gorm.DB) ([]Marca, error)
	Create(ctx context.Context, db *gorm.DB, marca *Marca) error
}

type Service interface {
	GetAll(ctx context.Context) ([]MarcaDto, error)
}

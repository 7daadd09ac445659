package domain

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	ErrNotFound         = errors.New("product not found")
	ErrOffsetNotANumber = errors.New("offset must be a number")
	ErrLimitNotANumber  = errors.New("limit must be a number")
	ErrNombreExistente  = errors.New("No se puede crear un producto con un nombre existente")
)

// NotFoundError reports a lookup for an id with no matching product.
type NotFoundError struct {
	ID int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("No product with id %d found", e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

type Service interface {
	GetByID(ctx context.Context, id int64) (*ProductoDto, error)
	GetAll(ctx context.Context, req ListRequest) ([]ProductoDto, error)
	Create(ctx context.Context, req CreateRequest) (*ProductoDto, error)
	Update(ctx context.Context, req UpdateRequest) (*ProductoDto, error)
	ActivateByID(ctx context.Context, id int64) error
	DeactivateByID(ctx context.Context, id int64) error
	DeleteByID(ctx context.Context, id int64) error
}

// ListRequest pages through products. Offset and Limit arrive as raw
// strings and must parse as numbers before any query runs. Nombre, when
// set, matches product, type, or brand names by substring.
type ListRequest struct {
	Offset string
	Limit  string
	Nombre string
}

type CreateRequest struct {
	Nombre      string   `json:"nombre"`
	Descripcion *string  `json:"descripcion"`
	Precio      *float64 `json:"precio"`
	Cantidad    *int64   `json:"cantidad"`
	IDTipo      *int64   `json:"idTipo"`
	IDMarca     *int64   `json:"idMarca"`
	Imagen      []byte   `json:"imagen"`
}

// UpdateRequest mutates a product; every field but the id is optional.
type UpdateRequest struct {
	IDProducto  int64    `json:"idProducto"`
	Nombre      *string  `json:"nombre"`
	Descripcion *string  `json:"descripcion"`
	Precio      *float64 `json:"precio"`
	Cantidad    *int64   `json:"cantidad"`
	IDTipo      *int64   `json:"idTipo"`
	IDMarca     *int64   `json:"idMarca"`
	Imagen      []byte   `json:"imagen"`
}

// ListFilter is the storage-level shape of a list query. Estado empty
// means no status filter (admin callers).
type ListFilter struct {
	Offset int
	Limit  int
	Estado string
	Nombre string
}

type Repository interface {
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*Producto, error)
	FindAll(ctx context.Context, db *gorm.DB, filter ListFilter) ([]Producto, error)
	FindByNombre(ctx context.Context, db *gorm.DB, nombre string) (*Producto, error)
	Create(ctx context.Context, db *gorm.DB, producto *Producto) error
	Update(ctx context.Context, db *gorm.DB, producto *Producto) error
	UpdateEstado(ctx context.Context, db *gorm.DB, id int64, estado string) error
	Delete(ctx context.Context, db *gorm.DB, id int64) error
}

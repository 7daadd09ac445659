package repository

import (
	"context"
	"errors"

	"github.com/zulem090/animal-style/internal/producto/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.Producto, error) {
	var p domain.Producto
	err := db.WithContext(ctx).
		Preload("Tipo").
		Preload("Marca").
		Where("id_producto = ?", id).
		First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *repo) FindAll(ctx context.Context, db *gorm.DB, filter domain.ListFilter) ([]domain.Producto, error) {
	var items []domain.Producto

	stmt := db.WithContext(ctx).
		Model(&domain.Producto{}).
		Preload("Tipo").
		Preload("Marca")

	if filter.Estado != "" {
		stmt = stmt.Where("productos.estado = ?", filter.Estado)
	}
	if filter.Nombre != "" {
		like := "%" + filter.Nombre + "%"
		stmt = stmt.
			Joins("LEFT JOIN tipos_producto ON tipos_producto.id_tipo_producto = productos.id_tipo").
			Joins("LEFT JOIN marcas ON marcas.id_marca = productos.id_marca").
			Where("productos.nombre LIKE ? OR tipos_producto.nombre LIKE ? OR marcas.nombre LIKE ?", like, like, like)
	}

	err := stmt.
		Order("productos.id_producto ASC").
		Offset(filter.Offset).
		Limit(filter.Limit).
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// FindByNombre matches the exact name, case-sensitively.
func (r *repo) FindByNombre(ctx context.Context, db *gorm.DB, nombre string) (*domain.Producto, error) {
	var p domain.Producto
	err := db.WithContext(ctx).Where("nombre = ?", nombre).First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *repo) Create(ctx context.Context, db *gorm.DB, producto *domain.Producto) error {
	return db.WithContext(ctx).Omit("Tipo", "Marca").Create(producto).Error
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, producto *domain.Producto) error {
	if producto == nil {
		return gorm.ErrInvalidData
	}
	return db.WithContext(ctx).
		Model(&domain.Producto{}).
		Where("id_producto = ?", producto.IDProducto).
		Updates(map[string]any{
			"nombre":      producto.Nombre,
			"descripcion": producto.Descripcion,
			"precio":      producto.Precio,
			"cantidad":    producto.Cantidad,
			"estado":      producto.Estado,
			"imagen":      producto.Imagen,
			"id_tipo":     producto.IDTipo,
			"id_marca":    producto.IDMarca,
		}).Error
}

func (r *repo) UpdateEstado(ctx context.Context, db *gorm.DB, id int64, estado string) error {
	return db.WithContext(ctx).
		Model(&domain.Producto{}).
		Where("id_producto = ?", id).
		Update("estado", estado).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id int64) error {
	return db.WithContext(ctx).Where("id_producto = ?", id).Delete(&domain.Producto{}).Error
}

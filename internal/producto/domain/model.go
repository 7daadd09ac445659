// Package domain contains core types for the product catalog.
package domain

import (
	marcadomain "github.com/zulem090/animal-style/internal/marca/domain"
	tipodomain "github.com/zulem090/animal-style/internal/tipoproducto/domain"
)

const (
	EstadoActivo   = "ACTIVO"
	EstadoInactivo = "INACTIVO"
)

// Producto is a catalog item. Imagen holds the raw image bytes; the
// transfer shape renders it as a base64 data URI.
type Producto struct {
	IDProducto  int64   `gorm:"column:id_producto;primaryKey"`
	Nombre      string  `gorm:"type:text;not null;uniqueIndex"`
	Descripcion *string `gorm:"type:text"`
	Precio      float64 `gorm:"not null"`
	Cantidad    int64   `gorm:"not null"`
	Estado      string  `gorm:"type:text;not null;default:ACTIVO"`
	Imagen      []byte  `gorm:"column:imagen"`
	IDTipo      *int64  `gorm:"column:id_tipo"`
	IDMarca     *int64  `gorm:"column:id_marca"`

	Tipo  *tipodomain.TipoProducto `gorm:"foreignKey:IDTipo;references:IDTipoProducto"`
	Marca *marcadomain.Marca       `gorm:"foreignKey:IDMarca;references:IDMarca"`
}

// TableName sets the database table name.
func (Producto) TableName() string { return "productos" }

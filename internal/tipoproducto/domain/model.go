// Package domain contains core types for the product-type reference
// entity.
package domain

// TipoProducto is a product category.
type TipoProducto struct {
	IDTipoProducto int64  `gorm:"column:id_tipo_producto;primaryKey"`
	Nombre         string `gorm:"type:text;not null"`
}

// TableName sets the database table name.
func (TipoProducto) TableName() string { return "tipos_producto" }

// TipoProductoDto is the shape exposed across the data-access boundary.
type TipoProductoDto struct {
	IDTipoProducto int64  `json:"idTipoProducto"`
	Nombre         string `json:"nombre"`
}

// ToTipoProductoDto converts a persisted product type to its transfer
// shape.
func ToTipoProductoDto(t *TipoProducto) TipoProductoDto {
	return TipoProductoDto{IDTipoProducto: t.IDTipoProducto, Nombre: t.Nombre}
}

// Package domain contains core types for the brand reference entity.
package domain

// Marca is a product brand.
type Marca struct {
	IDMarca int64  `gorm:"column:id_marca;primaryKey"`
	Nombre  string `gorm:"type:text;not null"`
}

// TableName sets the database table name.
func (Marca) TableName() string { return "marcas" }

// MarcaDto is the shape exposed across the data-access boundary.
type MarcaDto struct {
	IDMarca int64  `json:"idMarca"`
	Nombre  string `json:"nombre"`
}

// ToMarcaDto converts a persisted brand to its transfer shape.
func ToMarcaDto(m *Marca) MarcaDto {
	return MarcaDto{IDMarca: m.IDMarca, Nombre: m.Nombre}
}

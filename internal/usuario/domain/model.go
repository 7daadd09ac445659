// Package domain contains core types for user accounts.
package domain

// User is a registered account. Password holds the bcrypt hash, never
// plaintext.
type User struct {
	ID                string  `gorm:"column:id;primaryKey"`
	Nombre            string  `gorm:"type:text;not null"`
	Apellido          *string `gorm:"type:text"`
	Cedula            int64   `gorm:"not null"`
	Email             string  `gorm:"type:text;not null;uniqueIndex"`
	Usuario           string  `gorm:"type:text;not null;uniqueIndex"`
	Telefono          *int64  `gorm:"column:telefono"`
	Password          string  `gorm:"type:text;not null"`
	Role              string  `gorm:"type:text;not null;default:USER"`
	Direccion         *string `gorm:"type:text"`
	IDSucursalVirtual *int64  `gorm:"column:id_sucursal_virtual"`
}

// TableName sets the database table name.
func (User) TableName() string { return "users" }

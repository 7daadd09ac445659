package domain

import "github.com/zulem090/animal-style/internal/usercontext"

// UsuarioDto is the user shape exposed across the data-access boundary.
// Password carries the stored hash for credential verification and is
// never serialized.
type UsuarioDto struct {
	ID                string  `json:"id"`
	Nombre            string  `json:"nombre"`
	Apellido          *string `json:"apellido,omitempty"`
	Cedula            int64   `json:"cedula"`
	Email             string  `json:"email"`
	Role              string  `json:"role"`
	Direccion         *string `json:"direccion,omitempty"`
	Usuario           string  `json:"usuario"`
	Telefono          *int64  `json:"telefono,omitempty"`
	Password          string  `json:"-"`
	IDSucursalVirtual *int64  `json:"idSucursalVirtual,omitempty"`
}

// ToUsuarioDto converts a persisted user to its transfer shape. The
// role is reported as USER irrespective of the stored role; session
// role is always derived from storage, not from this DTO.
func ToUsuarioDto(u *User) UsuarioDto {
	return UsuarioDto{
		ID:                u.ID,
		Nombre:            u.Nombre,
		Apellido:          u.Apellido,
		Cedula:            u.Cedula,
		Email:             u.Email,
		Role:              usercontext.RoleUser,
		Direccion:         u.Direccion,
		Usuario:           u.Usuario,
		Telefono:          u.Telefono,
		Password:          u.Password,
		IDSucursalVirtual: u.IDSucursalVirtual,
	}
}

// ToUsuarioDB converts a transfer user back to the persisted shape.
// The role is fixed to ADMIN; storage remains the source of truth for
// authorization, so this never grants privileges on its own.
func ToUsuarioDB(dto UsuarioDto) User {
	return User{
		ID:                dto.ID,
		Nombre:            dto.Nombre,
		Apellido:          dto.Apellido,
		Cedula:            dto.Cedula,
		Email:             dto.Email,
		Role:              usercontext.RoleAdmin,
		Direccion:         dto.Direccion,
		Usuario:           dto.Usuario,
		Telefono:          dto.Telefono,
		Password:          dto.Password,
		IDSucursalVirtual: dto.IDSucursalVirtual,
	}
}

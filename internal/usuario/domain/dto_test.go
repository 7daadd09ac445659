package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zulem090/animal-style/internal/usercontext"
)

func TestToUsuarioDtoReportsUserRole(t *testing.T) {
	u := &User{
		ID:      "u1",
		Nombre:  "Ana",
		Cedula:  123,
		Email:   "ana@mail.com",
		Usuario: "ana",
		Role:    usercontext.RoleAdmin,
	}

	dto := ToUsuarioDto(u)
	assert.Equal(t, usercontext.RoleUser, dto.Role)
	assert.Equal(t, "ana@mail.com", dto.Email)
}

func TestToUsuarioDBFixesAdminRole(t *testing.T) {
	dto := UsuarioDto{
		ID:      "u1",
		Nombre:  "Ana",
		Cedula:  123,
		Email:   "ana@mail.com",
		Usuario: "ana",
		Role:    usercontext.RoleUser,
	}

	u := ToUsuarioDB(dto)
	assert.Equal(t, usercontext.RoleAdmin, u.Role)
	assert.Equal(t, "ana", u.Usuario)
}

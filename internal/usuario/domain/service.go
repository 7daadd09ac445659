package domain

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("user not found")

// NotFoundError reports a lookup for an id with no matching user.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("No user with id %s found", e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

type Repository interface {
	FindByID(ctx context.Context, db *gorm.DB, id string) (*User, error)
	FindByEmail(ctx context.Context, db *gorm.DB, email string) (*User, error)
	FindByEmailOrUsuario(ctx context.Context, db *gorm.DB, emailOrUsuario string) ([]User, error)
	Create(ctx context.Context, db *gorm.DB, user *User) error
	UpdatePersonalInfo(ctx context.Context, db *gorm.DB, id string, direccion *string, telefono *int64) error
}

type Service interface {
	GetByID(ctx context.Context, id string) (*UsuarioDto, error)
	UpdatePersonalInfo(ctx context.Context, req UpdatePersonalInfoRequest) error
}

// UpdatePersonalInfoRequest mutates the caller's own address and phone.
type UpdatePersonalInfoRequest struct {
	Direccion *string `json:"direccion"`
	Telefono  *int64  `json:"telefono"`
}

var ErrNoSession = errors.New("no authenticated user")

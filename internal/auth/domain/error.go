package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSessionNotFound    = errors.New("session not found")
	ErrSessionExpired     = errors.New("session expired")
	ErrSessionRevoked     = errors.New("session revoked")
	ErrInvalidSession     = errors.New("invalid session")
	ErrSignUpFailed       = errors.New("Error inesperado al crear usuario")
	ErrDuplicateField     = errors.New("duplicate field")
)

// DuplicateFieldError reports which unique column rejected a sign-up,
// distinguishable from the generic failure.
type DuplicateFieldError struct {
	Field string
}

func (e *DuplicateFieldError) Error() string {
	return fmt.Sprintf("%s ya existe en el sistema", e.Field)
}

func (e *DuplicateFieldError) Is(target error) bool { return target == ErrDuplicateField }

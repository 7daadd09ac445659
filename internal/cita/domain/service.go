package domain

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound         = errors.New("booking not found")
	ErrOffsetNotANumber = errors.New("offset must be a number")
	ErrLimitNotANumber  = errors.New("limit must be a number")
)

// NotFoundError reports a lookup for an id with no matching booking.
type NotFoundError struct {
	ID int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("No booking with id %d found", e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

type Service interface {
	GetByID(ctx context.Context, id int64) (*BookingDto, error)
	GetAll(ctx context.Context, req ListRequest) ([]BookingDto, error)
	Create(ctx context.Context, req CreateRequest) (*BookingDto, error)
	Update(ctx context.Context, req UpdateRequest) (*BookingDto, error)
	DeleteByID(ctx context.Context, id int64) error
}

// ListRequest pages through bookings. Offset and Limit arrive as raw
// strings and must parse as numbers before any query runs. Nombre, when
// set, matches pet name or appointment type by substring.
type ListRequest struct {
	Offset string
	Limit  string
	Nombre string
}

type CreateRequest struct {
	TipoCita      string     `json:"tipoCita"`
	NombreMascota string     `json:"nombreMascota"`
	TipoMascota   string     `json:"tipoMascota"`
	FechaHoraCita *time.Time `json:"fechaHoraCita"`
	Estado        string     `json:"estado"`
	Observaciones *string    `json:"observaciones"`
	IDUsuario     string     `json:"idUsuario"`
	IDPaciente    *int64     `json:"idPaciente"`
}

type UpdateRequest struct {
	IDCita        int64      `json:"idCita"`
	TipoCita      string     `json:"tipoCita"`
	NombreMascota string     `json:"nombreMascota"`
	TipoMascota   string     `json:"tipoMascota"`
	FechaHoraCita *time.Time `json:"fechaHoraCita"`
	Estado        string     `json:"estado"`
	Observaciones *string    `json:"observaciones"`
	IDUsuario     string     `json:"idUsuario"`
	IDPaciente    *int64     `json:"idPaciente"`
}

// ListFilter is the storage-level shape of a list query. IDUsuario
// empty means no owner filter (admin callers).
type ListFilter struct {
	Offset    int
	Limit     int
	IDUsuario string
	Nombre    string
}

type Repository interface {
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*Cita, error)
	FindAll(ctx context.Context, db *gorm.DB, filter ListFilter) ([]Cita, error)
	Create(ctx context.Context, db *gorm.DB, cita *Cita) error
	Update(ctx context.Context, db *gorm.DB, cita *Cita) error
	Delete(ctx context.Context, db *gorm.DB, id int64) error
}

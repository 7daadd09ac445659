package service

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/zulem090/animal-style/internal/cita/domain"
	"github.com/zulem090/animal-style/internal/config"
	"github.com/zulem090/animal-style/internal/usercontext"
	"github.com/zulem090/animal-style/internal/validation"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	fechaMinimaMessage = "Fecha Mínima: Hoy"
	fechaMaximaMessage = "No mas de 30 días de diferencia"
)

type Params struct {
	fx.In

	DB     *gorm.DB
	Log    *zap.Logger
	GenID  *snowflake.Node
	Repo   domain.Repository
	Tuning *config.TuningHolder
}

type Service struct {
	db     *gorm.DB
	log    *zap.Logger
	repo   domain.Repository
	genID  *snowflake.Node
	tuning *config.TuningHolder
}

func New(p Params) domain.Service {
	return &Service{
		db:     p.DB,
		log:    p.Log.Named("cita.service"),
		repo:   p.Repo,
		genID:  p.GenID,
		tuning: p.Tuning,
	}
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.BookingDto, error) {
	item, err := s.getBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	dto := domain.ToBookingDto(item)
	return &dto, nil
}

// GetAll lists bookings. Non-admin callers only ever see their own
// bookings; admins see every owner. The filter is built here, at query
// construction, not at the transport layer.
func (s *Service) GetAll(ctx context.Context, req domain.ListRequest) ([]domain.BookingDto, error) {
	offset, err := strconv.Atoi(strings.TrimSpace(req.Offset))
	if err != nil {
		return nil, domain.ErrOffsetNotANumber
	}
	limit, err := strconv.Atoi(strings.TrimSpace(req.Limit))
	if err != nil {
		return nil, domain.ErrLimitNotANumber
	}

	owner := ""
	if session, ok := usercontext.FromContext(ctx); ok && !session.IsAdmin() {
		owner = session.ID
	}

	items, err := s.repo.FindAll(ctx, s.db, domain.ListFilter{
		Offset:    offset,
		Limit:     limit,
		IDUsuario: owner,
		Nombre:    strings.TrimSpace(req.Nombre),
	})
	if err != nil {
		return nil, err
	}

	resp := make([]domain.BookingDto, 0, len(items))
	for i := range items {
		resp = append(resp, domain.ToBookingDto(&items[i]))
	}
	return resp, nil
}

func (s *Service) Create(ctx context.Context, req domain.CreateRequest) (*domain.BookingDto, error) {
	if err := s.validateBooking(req.TipoCita, req.NombreMascota, req.TipoMascota, req.FechaHoraCita, req.IDUsuario); err != nil {
		return nil, err
	}

	estado := req.Estado
	if estado == "" {
		estado = domain.EstadoActivo
	}

	var owner *string
	if req.IDUsuario != "" {
		owner = &req.IDUsuario
	}

	c := &domain.Cita{
		IDCita:        s.genID.Generate().Int64(),
		TipoCita:      req.TipoCita,
		NombreMascota: strings.TrimSpace(req.NombreMascota),
		TipoMascota:   req.TipoMascota,
		FechaHoraCita: *req.FechaHoraCita,
		Estado:        estado,
		Observaciones: req.Observaciones,
		IDUsuario:     owner,
		IDPaciente:    req.IDPaciente,
	}

	if err := s.repo.Create(ctx, s.db, c); err != nil {
		return nil, err
	}

	dto := domain.ToBookingDto(c)
	return &dto, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateRequest) (*domain.BookingDto, error) {
	var errs validation.Errors
	if req.IDCita == 0 {
		errs.Add("idCita", validation.RequiredMessage)
	}
	if err := errs.OrNil(); err != nil {
		return nil, err
	}
	if err := s.validateBooking(req.TipoCita, req.NombreMascota, req.TipoMascota, req.FechaHoraCita, req.IDUsuario); err != nil {
		return nil, err
	}

	item, err := s.getBooking(ctx, req.IDCita)
	if err != nil {
		return nil, err
	}

	item.TipoCita = req.TipoCita
	item.NombreMascota = strings.TrimSpace(req.NombreMascota)
	item.TipoMascota = req.TipoMascota
	item.FechaHoraCita = *req.FechaHoraCita
	if req.Estado != "" {
		item.Estado = req.Estado
	}
	item.Observaciones = req.Observaciones
	if req.IDUsuario != "" {
		item.IDUsuario = &req.IDUsuario
	}
	item.IDPaciente = req.IDPaciente

	if err := s.repo.Update(ctx, s.db, item); err != nil {
		return nil, err
	}

	dto := domain.ToBookingDto(item)
	return &dto, nil
}

func (s *Service) DeleteByID(ctx context.Context, id int64) error {
	if _, err := s.getBooking(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, s.db, id)
}

func (s *Service) getBooking(ctx context.Context, id int64) (*domain.Cita, error) {
	item, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, &domain.NotFoundError{ID: id}
	}
	return item, nil
}

// validateBooking checks the required fields and keeps the appointment
// inside the booking window: from now up to bookingWindowDays ahead.
func (s *Service) validateBooking(tipoCita, nombreMascota, tipoMascota string, fecha *time.Time, idUsuario string) error {
	var errs validation.Errors
	if strings.TrimSpace(tipoCita) == "" {
		errs.Add("tipoCita", validation.RequiredMessage)
	}
	if strings.TrimSpace(nombreMascota) == "" {
		errs.Add("nombreMascota", validation.RequiredMessage)
	}
	if strings.TrimSpace(tipoMascota) == "" {
		errs.Add("tipoMascota", validation.RequiredMessage)
	}
	if strings.TrimSpace(idUsuario) == "" {
		errs.Add("idUsuario", validation.RequiredMessage)
	}
	if fecha == nil {
		errs.Add("fechaHoraCita", validation.RequiredMessage)
	} else {
		now := time.Now()
		window := s.tuning.Current().BookingWindowDays
		if fecha.Before(now) {
			errs.Add("fechaHoraCita", fechaMinimaMessage)
		} else if fecha.After(now.AddDate(0, 0, window)) {
			errs.Add("fechaHoraCita", fechaMaximaMessage)
		}
	}
	return errs.OrNil()
}

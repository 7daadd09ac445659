package service

import (
	"context"

	"github.com/zulem090/animal-style/internal/usercontext"
	"github.com/zulem090/animal-style/internal/usuario/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB   *gorm.DB
	Log  *zap.Logger
	Repo domain.Repository
}

type Service struct {
	db   *gorm.DB
	log  *zap.Logger
	repo domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:   p.DB,
		log:  p.Log.Named("usuario.service"),
		repo: p.Repo,
	}
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.UsuarioDto, error) {
	user, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, &domain.NotFoundError{ID: id}
	}

	dto := domain.ToUsuarioDto(user)
	return &dto, nil
}

// UpdatePersonalInfo writes the caller's address and phone. Submitting
// the values already stored is a no-op: no write happens.
func (s *Service) UpdatePersonalInfo(ctx context.Context, req domain.UpdatePersonalInfoRequest) error {
	session, ok := usercontext.FromContext(ctx)
	if !ok {
		return domain.ErrNoSession
	}

	current, err := s.repo.FindByID(ctx, s.db, session.ID)
	if err != nil {
		return err
	}
	if current == nil {
		return &domain.NotFoundError{ID: session.ID}
	}

	if equalStringPtr(current.Direccion, req.Direccion) && equalInt64Ptr(current.Telefono, req.Telefono) {
		return nil
	}

	return s.repo.UpdatePersonalInfo(ctx, s.db, session.ID, req.Direccion, req.Telefono)
}

func equalStringPtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func equalInt64Ptr(a, b *int64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

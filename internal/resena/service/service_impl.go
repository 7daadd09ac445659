package service

import (
	"context"

	"github.com/zulem090/animal-style/internal/resena/domain"
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
		log:  p.Log.Named("resena.service"),
		repo: p.Repo,
	}
}

// GetProductoResenas aggregates review count and mean score. A product
// with no reviews yields zeroes, never a division artifact.
func (s *Service) GetProductoResenas(ctx context.Context, idProducto int64) (*domain.ResenaDto, error) {
	puntuaciones, err := s.repo.FindPuntuaciones(ctx, s.db, idProducto)
	if err != nil {
		return nil, err
	}

	dto := domain.ResenaDto{NumeroResenas: len(puntuaciones)}
	if len(puntuaciones) > 0 {
		var suma float64
		for _, p := range puntuaciones {
			suma += p
		}
		dto.PuntuacionPromedio = suma / float64(len(puntuaciones))
	}
	return &dto, nil
}

func (s *Service) GetPuntuacionByUser(ctx context.Context, idProducto int64, idUsuario string) (*float64, error) {
	return s.repo.FindPuntuacionByUser(ctx, s.db, idProducto, idUsuario)
}

package service

import (
	"context"

	"github.com/zulem090/animal-style/internal/marca/domain"
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
		log:  p.Log.Named("marca.service"),
		repo: p.Repo,
	}
}

func (s *Service) GetAll(ctx context.Context) ([]domain.MarcaDto, error) {
	items, err := s.repo.FindAll(ctx, s.db)
	if err != nil {
		return nil, err
	}

	resp := make([]domain.MarcaDto, 0, len(items))
	for i := range items {
		resp = append(resp, domain.ToMarcaDto(&items[i]))
	}
	return resp, nil
}

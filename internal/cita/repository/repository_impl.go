package repository

import (
	"context"
	"errors"

	"github.com/zulem090/animal-style/internal/cita/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.Cita, error) {
	var c domain.Cita
	err := db.WithContext(ctx).Where("id_cita = ?", id).First(&c).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *repo) FindAll(ctx context.Context, db *gorm.DB, filter domain.ListFilter) ([]domain.Cita, error) {
	var items []domain.Cita

	stmt := db.WithContext(ctx).Model(&domain.Cita{})

	if filter.IDUsuario != "" {
		stmt = stmt.Where("id_usuario = ?", filter.IDUsuario)
	}
	if filter.Nombre != "" {
		like := "%" + filter.Nombre + "%"
		stmt = stmt.Where("nombre_mascota LIKE ? OR tipo_cita LIKE ?", like, like)
	}

	err := stmt.
		Order("id_cita ASC").
		Offset(filter.Offset).
		Limit(filter.Limit).
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) Create(ctx context.Context, db *gorm.DB, cita *domain.Cita) error {
	return db.WithContext(ctx).Create(cita).Error
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, cita *domain.Cita) error {
	if cita == nil {
		return gorm.ErrInvalidData
	}
	return db.WithContext(ctx).
		Model(&domain.Cita{}).
		Where("id_cita = ?", cita.IDCita).
		Updates(map[string]any{
			"tipo_cita":       cita.TipoCita,
			"nombre_mascota":  cita.NombreMascota,
			"tipo_mascota":    cita.TipoMascota,
			"fecha_hora_cita": cita.FechaHoraCita,
			"estado":          cita.Estado,
			"observaciones":   cita.Observaciones,
			"id_usuario":      cita.IDUsuario,
			"id_paciente":     cita.IDPaciente,
		}).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id int64) error {
	return db.WithContext(ctx).Where("id_cita = ?", id).Delete(&domain.Cita{}).Error
}

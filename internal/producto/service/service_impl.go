package service

import (
	"context"
	"strconv"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/zulem090/animal-style/internal/producto/domain"
	"github.com/zulem090/animal-style/internal/usercontext"
	"github.com/zulem090/animal-style/internal/validation"
	"github.com/zulem090/animal-style/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Repo  domain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	repo  domain.Repository
	genID *snowflake.Node
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("producto.service"),
		repo:  p.Repo,
		genID: p.GenID,
	}
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.ProductoDto, error) {
	item, err := s.getProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	dto := domain.ToProductoDto(item)
	return &dto, nil
}

// GetAll lists products. Non-admin callers only ever see ACTIVO
// products; admins see every status. The filter is built here, at query
// construction, not at the transport layer.
func (s *Service) GetAll(ctx context.Context, req domain.ListRequest) ([]domain.ProductoDto, error) {
	offset, err := strconv.Atoi(strings.TrimSpace(req.Offset))
	if err != nil {
		return nil, domain.ErrOffsetNotANumber
	}
	limit, err := strconv.Atoi(strings.TrimSpace(req.Limit))
	if err != nil {
		return nil, domain.ErrLimitNotANumber
	}

	estado := domain.EstadoActivo
	if session, ok := usercontext.FromContext(ctx); ok && session.IsAdmin() {
		estado = ""
	}

	items, err := s.repo.FindAll(ctx, s.db, domain.ListFilter{
		Offset: offset,
		Limit:  limit,
		Estado: estado,
		Nombre: strings.TrimSpace(req.Nombre),
	})
	if err != nil {
		return nil, err
	}

	resp := make([]domain.ProductoDto, 0, len(items))
	for i := range items {
		resp = append(resp, domain.ToProductoDto(&items[i]))
	}
	return resp, nil
}

func (s *Service) Create(ctx context.Context, req domain.CreateRequest) (*domain.ProductoDto, error) {
	if err := validateCreate(req); err != nil {
		return nil, err
	}

	// Exact-name pre-check, distinct from generic validation failure.
	existing, err := s.repo.FindByNombre(ctx, s.db, req.Nombre)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrNombreExistente
	}

	p := &domain.Producto{
		IDProducto:  s.genID.Generate().Int64(),
		Nombre:      strings.TrimSpace(req.Nombre),
		Descripcion: req.Descripcion,
		Precio:      *req.Precio,
		Cantidad:    *req.Cantidad,
		Estado:      domain.EstadoActivo,
		Imagen:      req.Imagen,
		IDTipo:      req.IDTipo,
		IDMarca:     req.IDMarca,
	}

	if err := s.repo.Create(ctx, s.db, p); err != nil {
		// The pre-check has a race window; a concurrent insert still
		// surfaces the same message.
		if db.IsDuplicateKeyErr(err) {
			return nil, domain.ErrNombreExistente
		}
		return nil, err
	}

	dto := domain.ToProductoDto(p)
	return &dto, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateRequest) (*domain.ProductoDto, error) {
	if err := validateUpdate(req); err != nil {
		return nil, err
	}

	item, err := s.getProduct(ctx, req.IDProducto)
	if err != nil {
		return nil, err
	}

	if req.Nombre != nil {
		item.Nombre = strings.TrimSpace(*req.Nombre)
	}
	if req.Descripcion != nil {
		item.Descripcion = req.Descripcion
	}
	if req.Precio != nil {
		item.Precio = *req.Precio
	}
	if req.Cantidad != nil {
		item.Cantidad = *req.Cantidad
	}
	if req.IDTipo != nil {
		item.IDTipo = req.IDTipo
	}
	if req.IDMarca != nil {
		item.IDMarca = req.IDMarca
	}
	if len(req.Imagen) > 0 {
		item.Imagen = req.Imagen
	}

	if err := s.repo.Update(ctx, s.db, item); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return nil, domain.ErrNombreExistente
		}
		return nil, err
	}

	dto := domain.ToProductoDto(item)
	return &dto, nil
}

func (s *Service) ActivateByID(ctx context.Context, id int64) error {
	return s.setEstado(ctx, id, domain.EstadoActivo)
}

func (s *Service) DeactivateByID(ctx context.Context, id int64) error {
	return s.setEstado(ctx, id, domain.EstadoInactivo)
}

func (s *Service) DeleteByID(ctx context.Context, id int64) error {
	if _, err := s.getProduct(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, s.db, id)
}

func (s *Service) setEstado(ctx context.Context, id int64, estado string) error {
	if _, err := s.getProduct(ctx, id); err != nil {
		return err
	}
	return s.repo.UpdateEstado(ctx, s.db, id, estado)
}

func (s *Service) getProduct(ctx context.Context, id int64) (*domain.Producto, error) {
	item, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, &domain.NotFoundError{ID: id}
	}
	return item, nil
}

func validateCreate(req domain.CreateRequest) error {
	var errs validation.Errors
	if strings.TrimSpace(req.Nombre) == "" {
		errs.Add("nombre", validation.RequiredMessage)
	}
	if req.Precio == nil {
		errs.Add("precio", validation.RequiredMessage)
	} else if *req.Precio < 0 {
		errs.Add("precio", validation.MinOneMessage)
	}
	if req.Cantidad == nil {
		errs.Add("cantidad", validation.RequiredMessage)
	} else if *req.Cantidad < 0 {
		errs.Add("cantidad", validation.MinOneMessage)
	}
	return errs.OrNil()
}

func validateUpdate(req domain.UpdateRequest) error {
	var errs validation.Errors
	if req.IDProducto == 0 {
		errs.Add("idProducto", validation.RequiredMessage)
	}
	if req.Nombre != nil && strings.TrimSpace(*req.Nombre) == "" {
		errs.Add("nombre", validation.RequiredMessage)
	}
	if req.Precio != nil && *req.Precio < 0 {
		errs.Add("precio", validation.MinOneMessage)
	}
	if req.Cantidad != nil && *req.Cantidad < 0 {
		errs.Add("cantidad", validation.MinOneMessage)
	}
	return errs.OrNil()
}

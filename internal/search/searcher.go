// Package search implements the product search box: preview fetching,
// visibility, and keyboard navigation, held per session.
package search

import (
	"context"
	"strconv"

	productodomain "github.com/zulem090/animal-style/internal/producto/domain"
)

// Item is one row of the search preview.
type Item struct {
	ID     int64   `json:"idProducto"`
	Nombre string  `json:"nombre"`
	Precio float64 `json:"precio"`
	Imagen *string `json:"imagen"`
	Tipo   *string `json:"tipo"`
	Marca  *string `json:"marca"`
}

// Searcher fetches preview candidates for a search term.
type Searcher interface {
	Search(ctx context.Context, limit int, nombre string) ([]Item, error)
}

type productSearcher struct {
	svc productodomain.Service
}

// NewProductSearcher adapts the product service. The caller's session
// travels in ctx, so the usual visibility filter applies to previews.
func NewProductSearcher(svc productodomain.Service) Searcher {
	return &productSearcher{svc: svc}
}

func (s *productSearcher) Search(ctx context.Context, limit int, nombre string) ([]Item, error) {
	dtos, err := s.svc.GetAll(ctx, productodomain.ListRequest{
		Offset: "0",
		Limit:  strconv.Itoa(limit),
		Nombre: nombre,
	})
	if err != nil {
		return nil, err
	}

	items := make([]Item, 0, len(dtos))
	for _, dto := range dtos {
		items = append(items, Item{
			ID:     dto.IDProducto,
			Nombre: dto.Nombre,
			Precio: dto.Precio,
			Imagen: dto.Imagen,
			Tipo:   dto.Tipo,
			Marca:  dto.Marca,
		})
	}
	return items, nil
}

package server

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	productodomain "github.com/zulem090/animal-style/internal/producto/domain"
)

func (s *Server) ListProducts(c *gin.Context) {
	defaultLimit := strconv.Itoa(s.tuning.Current().DefaultPageSize)

	resp, err := s.productoSvc.GetAll(c.Request.Context(), productodomain.ListRequest{
		Offset: c.DefaultQuery("offset", "0"),
		Limit:  c.DefaultQuery("limit", defaultLimit),
		Nombre: c.Query("nombre"),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetProduct(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	resp, err := s.productoSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) CreateProduct(c *gin.Context) {
	var req productodomain.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	resp, err := s.productoSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": resp})
}

func (s *Server) UpdateProduct(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	var req productodomain.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}
	req.IDProducto = id

	resp, err := s.productoSvc.Update(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ActivateProduct(c *gin.Context) {
	s.setProductEstado(c, s.productoSvc.ActivateByID)
}

func (s *Server) DeactivateProduct(c *gin.Context) {
	s.setProductEstado(c, s.productoSvc.DeactivateByID)
}

func (s *Server) DeleteProduct(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	if err := s.productoSvc.DeleteByID(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) GetProductResenas(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	resp, err := s.resenaSvc.GetProductoResenas(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

// SearchPreview returns the top preview candidates for the search box.
// Terms below the minimum length yield an empty list without touching
// storage.
func (s *Server) SearchPreview(c *gin.Context) {
	nombre := c.Query("nombre")
	t := s.tuning.Current()

	if len([]rune(nombre)) < t.PreviewMinChars {
		c.JSON(http.StatusOK, gin.H{"data": []any{}})
		return
	}

	items, err := s.searcher.Search(c.Request.Context(), t.PreviewSize, nombre)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": items})
}

func (s *Server) setProductEstado(c *gin.Context, op func(ctx context.Context, id int64) error) {
	id, err := parseID(c)
	if err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	if err := op(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func parseID(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	citadomain "github.com/zulem090/animal-style/internal/cita/domain"
)

func (s *Server) ListBookings(c *gin.Context) {
	defaultLimit := strconv.Itoa(s.tuning.Current().DefaultPageSize)

	resp, err := s.citaSvc.GetAll(c.Request.Context(), citadomain.ListRequest{
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

func (s *Server) GetBooking(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	resp, err := s.citaSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) CreateBooking(c *gin.Context) {
	var req citadomain.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	resp, err := s.citaSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": resp})
}

func (s *Server) UpdateBooking(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	var req citadomain.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}
	req.IDCita = id

	resp, err := s.citaSvc.Update(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DeleteBooking(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	if err := s.citaSvc.DeleteByID(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

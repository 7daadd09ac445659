package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	usuariodomain "github.com/zulem090/animal-style/internal/usuario/domain"
)

func (s *Server) UpdatePersonalInfo(c *gin.Context) {
	var req usuariodomain.UpdatePersonalInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	if err := s.usuarioSvc.UpdatePersonalInfo(c.Request.Context(), req); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

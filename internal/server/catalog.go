package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) ListMarcas(c *gin.Context) {
	resp, err := s.marcaSvc.GetAll(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListTiposProducto(c *gin.Context) {
	resp, err := s.tipoSvc.GetAll(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

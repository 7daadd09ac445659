package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Seed routes are a dev convenience and disappear in production.
func (s *Server) RunSeed(c *gin.Context) {
	if s.cfg.IsProduction() {
		c.JSON(http.StatusNotFound, gin.H{"message": "not found"})
		return
	}

	if err := s.seeder.Run(c.Request.Context()); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Ejecutado"})
}

func (s *Server) RunDemoSeed(c *gin.Context) {
	if s.cfg.IsProduction() {
		c.JSON(http.StatusNotFound, gin.H{"message": "not found"})
		return
	}

	if err := s.seeder.RunDemo(c.Request.Context()); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Ejecutado"})
}

package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	authdomain "github.com/zulem090/animal-style/internal/auth/domain"
)

func (s *Server) Register(c *gin.Context) {
	var req authdomain.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	user, err := s.authSvc.SignUp(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": user})
}

type loginRequest struct {
	Usuario  string `json:"usuario"`
	Password string `json:"password"`
}

func (s *Server) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	result, err := s.authSvc.Login(c.Request.Context(), authdomain.LoginRequest{
		EmailOrUsuario: req.Usuario,
		Password:       req.Password,
		UserAgent:      c.Request.UserAgent(),
		IPAddress:      c.ClientIP(),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	s.sessions.Set(c, result.RawToken, result.ExpiresAt)

	c.JSON(http.StatusOK, gin.H{"data": result.User})
}

func (s *Server) Logout(c *gin.Context) {
	if token, ok := s.sessions.ReadToken(c); ok {
		_ = s.authSvc.Logout(c.Request.Context(), token)
	}
	s.sessions.Clear(c)

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

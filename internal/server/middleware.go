package server

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/zulem090/animal-style/internal/usercontext"
	"go.uber.org/zap"
)

// RequestLogger emits one structured line per request.
func RequestLogger(log *zap.Logger) gin.HandlerFunc {
	logger := log.Named("http")
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

// AuthRequired resolves the session cookie and injects the caller into
// the request context. Requests without a valid session are rejected.
func (s *Server) AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := s.sessions.ReadToken(c)
		if !ok {
			AbortWithError(c, ErrUnauthorized)
			return
		}

		session, err := s.authSvc.Authenticate(c.Request.Context(), token)
		if err != nil {
			AbortWithError(c, err)
			return
		}

		ctx := usercontext.WithUser(c.Request.Context(), *session)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// OptionalAuth injects the caller when a valid session cookie is
// present and lets the request through anonymously otherwise. Listing
// visibility filters depend on whether a session made it into context.
func (s *Server) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, ok := s.sessions.ReadToken(c); ok {
			if session, err := s.authSvc.Authenticate(c.Request.Context(), token); err == nil {
				ctx := usercontext.WithUser(c.Request.Context(), *session)
				c.Request = c.Request.WithContext(ctx)
			}
		}
		c.Next()
	}
}

// RequireAdmin gates product mutation behind the ADMIN role. Runs after
// AuthRequired.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := usercontext.FromContext(c.Request.Context())
		if !ok || !session.IsAdmin() {
			AbortWithError(c, ErrForbidden)
			return
		}
		c.Next()
	}
}

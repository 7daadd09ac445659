package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	authdomain "github.com/zulem090/animal-style/internal/auth/domain"
	citadomain "github.com/zulem090/animal-style/internal/cita/domain"
	productodomain "github.com/zulem090/animal-style/internal/producto/domain"
	usuariodomain "github.com/zulem090/animal-style/internal/usuario/domain"
	"github.com/zulem090/animal-style/internal/validation"
	"gorm.io/gorm"
)

type errorPayload struct {
	Type    string                  `json:"type"`
	Message string                  `json:"message"`
	Errors  []validation.FieldError `json:"errors,omitempty"`
}

type errorResponse struct {
	Error errorPayload `json:"error"`
}

var (
	ErrUnauthorized   = errors.New("unauthorized")
	ErrForbidden      = errors.New("forbidden")
	ErrInvalidRequest = errors.New("invalid request")
)

// ErrorHandlingMiddleware maps domain errors to HTTP responses after
// the handler chain runs. Handlers attach errors instead of writing
// status codes themselves.
func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		status, payload := mapError(lastErr.Err)
		c.Header("Content-Type", "application/json")
		c.AbortWithStatusJSON(status, errorResponse{Error: payload})
	}
}

func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func mapError(err error) (int, errorPayload) {
	if err == nil {
		return http.StatusInternalServerError, errorPayload{
			Type:    "internal_error",
			Message: "internal server error",
		}
	}

	var vErrs *validation.Errors
	if errors.As(err, &vErrs) {
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: vErrs.Error(),
			Errors:  vErrs.Fields,
		}
	}

	var dupErr *authdomain.DuplicateFieldError
	if errors.As(err, &dupErr) {
		return http.StatusConflict, errorPayload{
			Type:    "conflict",
			Message: dupErr.Error(),
		}
	}

	switch {
	case errors.Is(err, productodomain.ErrOffsetNotANumber),
		errors.Is(err, productodomain.ErrLimitNotANumber),
		errors.Is(err, citadomain.ErrOffsetNotANumber),
		errors.Is(err, citadomain.ErrLimitNotANumber),
		errors.Is(err, productodomain.ErrNombreExistente),
		errors.Is(err, ErrInvalidRequest):
		return http.StatusBadRequest, errorPayload{
			Type:    "invalid_request",
			Message: err.Error(),
		}
	case errors.Is(err, ErrUnauthorized),
		errors.Is(err, authdomain.ErrInvalidCredentials),
		errors.Is(err, authdomain.ErrInvalidSession),
		errors.Is(err, authdomain.ErrSessionExpired),
		errors.Is(err, authdomain.ErrSessionRevoked),
		errors.Is(err, usuariodomain.ErrNoSession):
		return http.StatusUnauthorized, errorPayload{
			Type:    "unauthorized",
			Message: "unauthorized",
		}
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden, errorPayload{
			Type:    "forbidden",
			Message: "forbidden",
		}
	case errors.Is(err, productodomain.ErrNotFound),
		errors.Is(err, citadomain.ErrNotFound),
		errors.Is(err, usuariodomain.ErrNotFound):
		// not-found errors carry the interpolated entity message
		return http.StatusNotFound, errorPayload{
			Type:    "not_found",
			Message: err.Error(),
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		return http.StatusNotFound, errorPayload{
			Type:    "not_found",
			Message: "not found",
		}
	case errors.Is(err, authdomain.ErrSignUpFailed):
		return http.StatusInternalServerError, errorPayload{
			Type:    "internal_error",
			Message: err.Error(),
		}
	default:
		return http.StatusInternalServerError, errorPayload{
			Type:    "internal_error",
			Message: "internal server error",
		}
	}
}

package domain

import (
	"context"
	"time"

	"github.com/zulem090/animal-style/internal/usercontext"
	usuariodomain "github.com/zulem090/animal-style/internal/usuario/domain"
	"gorm.io/gorm"
)

type Service interface {
	SignUp(ctx context.Context, req SignUpRequest) (*usuariodomain.UsuarioDto, error)
	SignInEmailPassword(ctx context.Context, email, password string) (*usuariodomain.UsuarioDto, error)
	SignInEmailUsuarioPassword(ctx context.Context, emailOrUsuario, password string) (*usuariodomain.UsuarioDto, error)
	Login(ctx context.Context, req LoginRequest) (*LoginResult, error)
	Logout(ctx context.Context, rawToken string) error
	Authenticate(ctx context.Context, rawToken string) (*usercontext.UserSession, error)
}

type SignUpRequest struct {
	Nombre    string  `json:"nombre"`
	Apellido  *string `json:"apellido"`
	Cedula    *int64  `json:"cedula"`
	Telefono  *int64  `json:"telefono"`
	Email     string  `json:"email"`
	Usuario   string  `json:"usuario"`
	Password  string  `json:"password"`
	Direccion *string `json:"direccion"`
}

type LoginRequest struct {
	EmailOrUsuario string `json:"usuario"`
	Password       string `json:"password"`
	UserAgent      string `json:"-"`
	IPAddress      string `json:"-"`
}

// LoginResult carries the raw session token to be planted in the
// cookie; it is never persisted.
type LoginResult struct {
	User      usuariodomain.UsuarioDto
	RawToken  string
	ExpiresAt time.Time
	SessionID int64
}

type SessionRepository interface {
	CreateSession(ctx context.Context, db *gorm.DB, session *Session) error
	GetSessionByTokenHash(ctx context.Context, db *gorm.DB, tokenHash string) (*Session, error)
	UpdateLastSeen(ctx context.Context, db *gorm.DB, sessionID int64, lastSeen time.Time) error
	RevokeSession(ctx context.Context, db *gorm.DB, sessionID int64, revokedAt time.Time) error
}

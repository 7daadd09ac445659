package service

import (
	"context"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"net/mail"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/google/uuid"
	"github.com/zulem090/animal-style/internal/auth/domain"
	"github.com/zulem090/animal-style/internal/config"
	"github.com/zulem090/animal-style/internal/usercontext"
	usuariodomain "github.com/zulem090/animal-style/internal/usuario/domain"
	"github.com/zulem090/animal-style/internal/validation"
	"github.com/zulem090/animal-style/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	bcryptCost        = 10
	sessionTokenBytes = 32
)

type Params struct {
	fx.In

	Cfg         config.Config
	DB          *gorm.DB
	Log         *zap.Logger
	GenID       *snowflake.Node
	Tuning      *config.TuningHolder
	UserRepo    usuariodomain.Repository
	SessionRepo domain.SessionRepository
}

type Service struct {
	cfg         config.Config
	db          *gorm.DB
	log         *zap.Logger
	genID       *snowflake.Node
	tuning      *config.TuningHolder
	userRepo    usuariodomain.Repository
	sessionRepo domain.SessionRepository
}

func New(p Params) domain.Service {
	return &Service{
		cfg:         p.Cfg,
		db:          p.DB,
		log:         p.Log.Named("auth.service"),
		genID:       p.GenID,
		tuning:      p.Tuning,
		userRepo:    p.UserRepo,
		sessionRepo: p.SessionRepo,
	}
}

func (s *Service) SignUp(ctx context.Context, req domain.SignUpRequest) (*usuariodomain.UsuarioDto, error) {
	if err := validateSignUp(req); err != nil {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &usuariodomain.User{
		ID:        uuid.NewString(),
		Nombre:    strings.TrimSpace(req.Nombre),
		Apellido:  req.Apellido,
		Cedula:    *req.Cedula,
		Email:     strings.TrimSpace(req.Email),
		Usuario:   strings.TrimSpace(req.Usuario),
		Telefono:  req.Telefono,
		Password:  string(hashed),
		Role:      usercontext.RoleUser,
		Direccion: req.Direccion,
	}

	if err := s.userRepo.Create(ctx, s.db, user); err != nil {
		if db.IsDuplicateKeyErr(err) {
			field := db.DuplicateKeyField(err, "email", "usuario", "cedula")
			if field == "" {
				field = "email"
			}
			return nil, &domain.DuplicateFieldError{Field: field}
		}
		s.log.Error("sign up failed", zap.Error(err))
		return nil, domain.ErrSignUpFailed
	}

	dto := usuariodomain.ToUsuarioDto(user)
	return &dto, nil
}

// SignInEmailPassword verifies credentials against the stored hash.
// Failures are opaque: the reason is logged, the caller only learns
// that no user matched.
func (s *Service) SignInEmailPassword(ctx context.Context, email, password string) (*usuariodomain.UsuarioDto, error) {
	if email == "" || password == "" {
		return nil, nil
	}

	user, err := s.userRepo.FindByEmail(ctx, s.db, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		s.log.Warn("sign in rejected", zap.String("reason", "Usuario no existe"))
		return nil, nil
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		s.log.Warn("sign in rejected", zap.String("reason", "Contraseña incorrecta"))
		return nil, nil
	}

	dto := usuariodomain.ToUsuarioDto(user)
	return &dto, nil
}

// SignInEmailUsuarioPassword accepts either email or username. Every
// record matching the disjunction must pass the comparison or the whole
// attempt is rejected.
func (s *Service) SignInEmailUsuarioPassword(ctx context.Context, emailOrUsuario, password string) (*usuariodomain.UsuarioDto, error) {
	if emailOrUsuario == "" || password == "" {
		return nil, nil
	}

	users, err := s.userRepo.FindByEmailOrUsuario(ctx, s.db, emailOrUsuario)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		s.log.Warn("sign in rejected", zap.String("reason", "Usuario no existe"))
		return nil, nil
	}

	for i := range users {
		if bcrypt.CompareHashAndPassword([]byte(users[i].Password), []byte(password)) != nil {
			s.log.Warn("sign in rejected", zap.String("reason", "Contraseña incorrecta"))
			return nil, nil
		}
	}

	dto := usuariodomain.ToUsuarioDto(&users[len(users)-1])
	return &dto, nil
}

func (s *Service) Login(ctx context.Context, req domain.LoginRequest) (*domain.LoginResult, error) {
	user, err := s.SignInEmailUsuarioPassword(ctx, strings.TrimSpace(req.EmailOrUsuario), req.Password)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}

	rawToken, err := newSessionToken()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	ttlDays := s.tuning.Current().SessionTTLDays
	session := &domain.Session{
		ID:               s.genID.Generate().Int64(),
		UserID:           user.ID,
		SessionTokenHash: s.hashToken(rawToken),
		UserAgent:        strings.TrimSpace(req.UserAgent),
		IPAddress:        strings.TrimSpace(req.IPAddress),
		ExpiresAt:        now.AddDate(0, 0, ttlDays),
		CreatedAt:        now,
		LastSeenAt:       now,
	}
	if err := s.sessionRepo.CreateSession(ctx, s.db, session); err != nil {
		return nil, err
	}

	return &domain.LoginResult{
		User:      *user,
		RawToken:  rawToken,
		ExpiresAt: session.ExpiresAt,
		SessionID: session.ID,
	}, nil
}

func (s *Service) Logout(ctx context.Context, rawToken string) error {
	token := strings.TrimSpace(rawToken)
	if token == "" {
		return domain.ErrInvalidSession
	}

	session, err := s.sessionRepo.GetSessionByTokenHash(ctx, s.db, s.hashToken(token))
	if err != nil {
		if err == domain.ErrSessionNotFound {
			return domain.ErrInvalidSession
		}
		return err
	}

	return s.sessionRepo.RevokeSession(ctx, s.db, session.ID, time.Now().UTC())
}

// Authenticate resolves a raw cookie token into the caller identity.
// Role and name are re-read from storage on every request so role
// changes propagate without a new login.
func (s *Service) Authenticate(ctx context.Context, rawToken string) (*usercontext.UserSession, error) {
	token := strings.TrimSpace(rawToken)
	if token == "" {
		return nil, domain.ErrInvalidSession
	}

	session, err := s.sessionRepo.GetSessionByTokenHash(ctx, s.db, s.hashToken(token))
	if err != nil {
		if err == domain.ErrSessionNotFound {
			return nil, domain.ErrInvalidSession
		}
		return nil, err
	}

	now := time.Now().UTC()
	if session.RevokedAt != nil {
		return nil, domain.ErrSessionRevoked
	}
	if now.After(session.ExpiresAt) {
		return nil, domain.ErrSessionExpired
	}

	if err := s.sessionRepo.UpdateLastSeen(ctx, s.db, session.ID, now); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(ctx, s.db, session.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidSession
	}

	role := user.Role
	if role == "" {
		role = usercontext.RoleUser
	}

	return &usercontext.UserSession{
		ID:     user.ID,
		Role:   role,
		Nombre: user.Nombre,
	}, nil
}

func (s *Service) hashToken(raw string) string {
	mac := hmac.New(sha256.New, []byte(s.cfg.AuthTokenSecret))
	mac.Write([]byte(raw))
	return hex.EncodeToString(mac.Sum(nil))
}

func newSessionToken() (string, error) {
	buf := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

func validateSignUp(req domain.SignUpRequest) error {
	var errs validation.Errors
	if strings.TrimSpace(req.Nombre) == "" {
		errs.Add("nombre", validation.RequiredMessage)
	}
	if req.Cedula == nil {
		errs.Add("cedula", validation.RequiredMessage)
	} else if *req.Cedula < 1 {
		errs.Add("cedula", validation.MinOneMessage)
	}
	if req.Telefono != nil && *req.Telefono < 1 {
		errs.Add("telefono", validation.MinOneMessage)
	}
	email := strings.TrimSpace(req.Email)
	if email == "" {
		errs.Add("email", validation.RequiredMessage)
	} else if _, err := mail.ParseAddress(email); err != nil {
		errs.Add("email", validation.EmailMessage)
	}
	if strings.TrimSpace(req.Usuario) == "" {
		errs.Add("usuario", validation.RequiredMessage)
	}
	if req.Password == "" {
		errs.Add("password", validation.RequiredMessage)
	}
	return errs.OrNil()
}

package service

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	authdomain "github.com/zulem090/animal-style/internal/auth/domain"
	authrepo "github.com/zulem090/animal-style/internal/auth/repository"
	"github.com/zulem090/animal-style/internal/config"
	"github.com/zulem090/animal-style/internal/usercontext"
	usuariodomain "github.com/zulem090/animal-style/internal/usuario/domain"
	usuariorepo "github.com/zulem090/animal-style/internal/usuario/repository"
	"github.com/zulem090/animal-style/pkg/db"
	"go.uber.org/zap"
)

func newTestService(t *testing.T) authdomain.Service {
	t.Helper()

	dbConn, err := db.NewTest()
	require.NoError(t, err)
	require.NoError(t, dbConn.AutoMigrate(&usuariodomain.User{}, &authdomain.Session{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	return New(Params{
		Cfg:         config.Config{AuthTokenSecret: "test-secret"},
		DB:          dbConn,
		Log:         zap.NewNop(),
		GenID:       node,
		Tuning:      config.NewStaticTuningHolder(config.DefaultTuning()),
		UserRepo:    usuariorepo.Provide(),
		SessionRepo: authrepo.ProvideSessionRepository(),
	})
}

func int64Ptr(v int64) *int64 { return &v }

func validSignUp() authdomain.SignUpRequest {
	return authdomain.SignUpRequest{
		Nombre:   "Juan",
		Cedula:   int64Ptr(123456),
		Email:    "juan@mail.com",
		Usuario:  "juan",
		Password: "123",
	}
}

func TestSignUpAndSignIn(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.SignUp(ctx, validSignUp())
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.NotEmpty(t, created.ID)
	assert.NotEqual(t, "123", created.Password)

	user, err := svc.SignInEmailPassword(ctx, "juan@mail.com", "123")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "juan@mail.com", user.Email)

	byUsuario, err := svc.SignInEmailUsuarioPassword(ctx, "juan", "123")
	require.NoError(t, err)
	require.NotNil(t, byUsuario)
}

func TestSignInFailuresAreOpaque(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.SignUp(ctx, validSignUp())
	require.NoError(t, err)

	// unknown user and wrong password look identical to the caller
	user, err := svc.SignInEmailPassword(ctx, "nadie@mail.com", "123")
	require.NoError(t, err)
	assert.Nil(t, user)

	user, err = svc.SignInEmailPassword(ctx, "juan@mail.com", "wrong")
	require.NoError(t, err)
	assert.Nil(t, user)

	user, err = svc.SignInEmailPassword(ctx, "", "")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestSignUpDuplicate(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.SignUp(ctx, validSignUp())
	require.NoError(t, err)

	dup := validSignUp()
	dup.Usuario = "otro"
	_, err = svc.SignUp(ctx, dup)
	require.Error(t, err)
	assert.ErrorIs(t, err, authdomain.ErrDuplicateField)
	assert.Contains(t, err.Error(), "ya existe en el sistema")
}

func TestSignUpValidation(t *testing.T) {
	svc := newTestService(t)

	req := validSignUp()
	req.Email = "not-an-email"
	_, err := svc.SignUp(context.Background(), req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "debe ser un correo váldio")

	req = validSignUp()
	req.Cedula = int64Ptr(0)
	_, err = svc.SignUp(context.Background(), req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Unidades mínima: 1")
}

func TestLoginLogoutLifecycle(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.SignUp(ctx, validSignUp())
	require.NoError(t, err)

	result, err := svc.Login(ctx, authdomain.LoginRequest{EmailOrUsuario: "juan", Password: "123"})
	require.NoError(t, err)
	require.NotEmpty(t, result.RawToken)
	assert.WithinDuration(t, time.Now().AddDate(0, 0, 30), result.ExpiresAt, time.Minute)

	session, err := svc.Authenticate(ctx, result.RawToken)
	require.NoError(t, err)
	assert.Equal(t, usercontext.RoleUser, session.Role)
	assert.Equal(t, "Juan", session.Nombre)

	require.NoError(t, svc.Logout(ctx, result.RawToken))

	_, err = svc.Authenticate(ctx, result.RawToken)
	assert.ErrorIs(t, err, authdomain.ErrSessionRevoked)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.SignUp(ctx, validSignUp())
	require.NoError(t, err)

	_, err = svc.Login(ctx, authdomain.LoginRequest{EmailOrUsuario: "juan", Password: "bad"})
	assert.ErrorIs(t, err, authdomain.ErrInvalidCredentials)
}

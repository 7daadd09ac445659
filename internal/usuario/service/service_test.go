package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zulem090/animal-style/internal/usercontext"
	"github.com/zulem090/animal-style/internal/usuario/domain"
	usuariorepo "github.com/zulem090/animal-style/internal/usuario/repository"
	"github.com/zulem090/animal-style/pkg/db"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// countingRepo wraps the real repository and tallies writes.
type countingRepo struct {
	domain.Repository
	updates int
}

func (r *countingRepo) UpdatePersonalInfo(ctx context.Context, db *gorm.DB, id string, direccion *string, telefono *int64) error {
	r.updates++
	return r.Repository.UpdatePersonalInfo(ctx, db, id, direccion, telefono)
}

func newCountingService(t *testing.T) (domain.Service, *gorm.DB, *countingRepo) {
	t.Helper()

	conn, err := db.NewTest()
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(&domain.User{}))

	repo := &countingRepo{Repository: usuariorepo.Provide()}
	svc := New(Params{
		DB:   conn,
		Log:  zap.NewNop(),
		Repo: repo,
	})
	return svc, conn, repo
}

func newTestService(t *testing.T) (domain.Service, *gorm.DB) {
	t.Helper()

	conn, err := db.NewTest()
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(&domain.User{}))

	svc := New(Params{
		DB:   conn,
		Log:  zap.NewNop(),
		Repo: usuariorepo.Provide(),
	})
	return svc, conn
}

func seedUser(t *testing.T, conn *gorm.DB, id string) *domain.User {
	t.Helper()

	user := &domain.User{
		ID:       id,
		Nombre:   "Ana",
		Cedula:   123,
		Email:    id + "@mail.com",
		Usuario:  "u-" + id,
		Password: "hash",
		Role:     usercontext.RoleUser,
	}
	require.NoError(t, conn.Create(user).Error)
	return user
}

func authedContext(id string) context.Context {
	return usercontext.WithUser(context.Background(), usercontext.UserSession{
		ID:   id,
		Role: usercontext.RoleUser,
	})
}

func TestGetByID(t *testing.T) {
	svc, conn := newTestService(t)
	seedUser(t, conn, "u1")

	dto, err := svc.GetByID(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "Ana", dto.Nombre)
	assert.Equal(t, usercontext.RoleUser, dto.Role)
}

func TestGetByIDNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.GetByID(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	assert.EqualError(t, err, "No user with id missing found")
}

func TestUpdatePersonalInfoRequiresSession(t *testing.T) {
	svc, _ := newTestService(t)

	err := svc.UpdatePersonalInfo(context.Background(), domain.UpdatePersonalInfoRequest{})
	assert.ErrorIs(t, err, domain.ErrNoSession)
}

func TestUpdatePersonalInfo(t *testing.T) {
	svc, conn := newTestService(t)
	seedUser(t, conn, "u1")

	direccion := "Calle 10 #4-23"
	telefono := int64(3001234567)
	err := svc.UpdatePersonalInfo(authedContext("u1"), domain.UpdatePersonalInfoRequest{
		Direccion: &direccion,
		Telefono:  &telefono,
	})
	require.NoError(t, err)

	var stored domain.User
	require.NoError(t, conn.First(&stored, "id = ?", "u1").Error)
	require.NotNil(t, stored.Direccion)
	assert.Equal(t, direccion, *stored.Direccion)
	require.NotNil(t, stored.Telefono)
	assert.Equal(t, telefono, *stored.Telefono)
}

func TestUpdatePersonalInfoUnchangedIsNoOp(t *testing.T) {
	svc, conn, repo := newCountingService(t)
	user := seedUser(t, conn, "u1")

	direccion := "Calle 10 #4-23"
	telefono := int64(3001234567)
	user.Direccion = &direccion
	user.Telefono = &telefono
	require.NoError(t, conn.Save(user).Error)

	// submitting the stored values must not touch the repository
	err := svc.UpdatePersonalInfo(authedContext("u1"), domain.UpdatePersonalInfoRequest{
		Direccion: &direccion,
		Telefono:  &telefono,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, repo.updates)

	otraDireccion := "Carrera 7 #12-80"
	err = svc.UpdatePersonalInfo(authedContext("u1"), domain.UpdatePersonalInfoRequest{
		Direccion: &otraDireccion,
		Telefono:  &telefono,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, repo.updates)
}

func TestUpdatePersonalInfoUnknownUser(t *testing.T) {
	svc, _ := newTestService(t)

	direccion := "Calle 10"
	err := svc.UpdatePersonalInfo(authedContext("ghost"), domain.UpdatePersonalInfoRequest{
		Direccion: &direccion,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRequiresTokenSecretInProduction(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("AUTH_TOKEN_SECRET", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AUTH_TOKEN_SECRET")
}

func TestLoadAcceptsProvidedSecretInProduction(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("AUTH_TOKEN_SECRET", "s3cret")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "s3cret", cfg.AuthTokenSecret)
	assert.True(t, cfg.IsProduction())
}

func TestLoadFallsBackToDevSecret(t *testing.T) {
	t.Setenv("ENVIRONMENT", "development")
	t.Setenv("AUTH_TOKEN_SECRET", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.NotEmpty(t, cfg.AuthTokenSecret)
}

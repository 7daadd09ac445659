package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTuningIsValid(t *testing.T) {
	require.NoError(t, validateTuning(DefaultTuning()))
}

func TestValidateTuningRejectsNonPositive(t *testing.T) {
	cfg := DefaultTuning()
	cfg.BookingWindowDays = 0
	assert.Error(t, validateTuning(cfg))

	cfg = DefaultTuning()
	cfg.PreviewSize = -1
	assert.Error(t, validateTuning(cfg))

	cfg = DefaultTuning()
	cfg.SessionTTLDays = 0
	assert.Error(t, validateTuning(cfg))
}

func TestStaticTuningHolder(t *testing.T) {
	cfg := DefaultTuning()
	cfg.PreviewMinChars = 3

	holder := NewStaticTuningHolder(cfg)
	assert.Equal(t, 3, holder.Current().PreviewMinChars)
}

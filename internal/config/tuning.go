package config

import (
	"errors"
	"log"
	"strings"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Tuning holds store behavior knobs loaded from an optional
// animalstyle.yml file, hot-reloaded on change.
type Tuning struct {
	BookingWindowDays int `mapstructure:"bookingWindowDays"`
	PreviewMinChars   int `mapstructure:"previewMinChars"`
	PreviewSize       int `mapstructure:"previewSize"`
	SessionTTLDays    int `mapstructure:"sessionTTLDays"`
	DefaultPageSize   int `mapstructure:"defaultPageSize"`
}

func DefaultTuning() Tuning {
	return Tuning{
		BookingWindowDays: 31,
		PreviewMinChars:   2,
		PreviewSize:       5,
		SessionTTLDays:    30,
		DefaultPageSize:   10,
	}
}

// TuningHolder exposes the current tuning snapshot.
type TuningHolder struct {
	current atomic.Value // holds Tuning
}

func NewTuningHolder() (*TuningHolder, error) {
	v := viper.New()

	v.SetConfigName("animalstyle")
	v.SetConfigType("yml")
	v.AddConfigPath("/etc/animalstyle")
	v.AddConfigPath(".")

	v.SetEnvPrefix("ANIMALSTYLE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := DefaultTuning()
	v.SetDefault("store.bookingWindowDays", defaults.BookingWindowDays)
	v.SetDefault("store.previewMinChars", defaults.PreviewMinChars)
	v.SetDefault("store.previewSize", defaults.PreviewSize)
	v.SetDefault("store.sessionTTLDays", defaults.SessionTTLDays)
	v.SetDefault("store.defaultPageSize", defaults.DefaultPageSize)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Tuning
	if err := v.UnmarshalKey("store", &cfg); err != nil {
		return nil, err
	}
	if err := validateTuning(cfg); err != nil {
		return nil, err
	}

	holder := &TuningHolder{}
	holder.current.Store(cfg)

	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		var next Tuning
		if err := v.UnmarshalKey("store", &next); err != nil {
			log.Printf("tuning reload failed: %v", err)
			return
		}
		if err := validateTuning(next); err != nil {
			log.Printf("tuning reload rejected: %v", err)
			return
		}
		holder.current.Store(next)
	})

	return holder, nil
}

// Current returns the active tuning snapshot.
func (h *TuningHolder) Current() Tuning {
	return h.current.Load().(Tuning)
}

// NewStaticTuningHolder wraps a fixed tuning value, for tests.
func NewStaticTuningHolder(cfg Tuning) *TuningHolder {
	holder := &TuningHolder{}
	holder.current.Store(cfg)
	return holder
}

func validateTuning(cfg Tuning) error {
	if cfg.BookingWindowDays <= 0 {
		return errors.New("bookingWindowDays must be positive")
	}
	if cfg.PreviewMinChars <= 0 {
		return errors.New("previewMinChars must be positive")
	}
	if cfg.PreviewSize <= 0 {
		return errors.New("previewSize must be positive")
	}
	if cfg.SessionTTLDays <= 0 {
		return errors.New("sessionTTLDays must be positive")
	}
	if cfg.DefaultPageSize <= 0 {
		return errors.New("defaultPageSize must be positive")
	}
	return nil
}

package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zhhb/electronmail/pkg/config"
)

type testConfig struct {
	Timeout time.Duration `env:"TEST_LOADER_TIMEOUT" envDefault:"10s"`
	Name    string        `env:"TEST_LOADER_NAME" envDefault:"sessiond"`
	Port    int           `env:"TEST_LOADER_PORT" envDefault:"8080"`
}

func TestLoad(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		var cfg testConfig
		require.NoError(t, config.Load(&cfg))

		assert.Equal(t, 10*time.Second, cfg.Timeout)
		assert.Equal(t, "sessiond", cfg.Name)
		assert.Equal(t, 8080, cfg.Port)
	})

	t.Run("reads environment overrides", func(t *testing.T) {
		t.Setenv("TEST_LOADER_TIMEOUT", "250ms")
		t.Setenv("TEST_LOADER_PORT", "9090")

		var cfg testConfig
		require.NoError(t, config.Load(&cfg))

		assert.Equal(t, 250*time.Millisecond, cfg.Timeout)
		assert.Equal(t, 9090, cfg.Port)
	})

	t.Run("rejects nil pointer", func(t *testing.T) {
		err := config.Load[testConfig](nil)
		assert.ErrorIs(t, err, config.ErrNilPointer)
	})

	t.Run("reports unparsable values", func(t *testing.T) {
		t.Setenv("TEST_LOADER_PORT", "not-a-number")

		var cfg testConfig
		err := config.Load(&cfg)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})
}

type requiredConfig struct {
	Secret string `env:"TEST_LOADER_REQUIRED_SECRET,required"`
}

func TestMustLoad(t *testing.T) {
	t.Run("panics on missing required variable", func(t *testing.T) {
		assert.Panics(t, func() {
			var cfg requiredConfig
			config.MustLoad(&cfg)
		})
	})

	t.Run("succeeds when variable present", func(t *testing.T) {
		t.Setenv("TEST_LOADER_REQUIRED_SECRET", "s3cret")

		var cfg requiredConfig
		assert.NotPanics(t, func() { config.MustLoad(&cfg) })
		assert.Equal(t, "s3cret", cfg.Secret)
	})
}

package session

import "time"

// Config holds lifecycle manager configuration
type Config struct {
	// ClearStorageTimeout bounds the native storage-clear call during a
	// backend session reset (default: "10s")
	ClearStorageTimeout time.Duration `env:"SESSION_CLEAR_STORAGE_TIMEOUT" envDefault:"10s"`
}

// ConfigSource returns the current configuration snapshot. The manager reads
// it once per operation that needs it, so live config updates take effect on
// the next call without any subscription being held.
type ConfigSource func() Config

// DefaultConfig returns default lifecycle configuration
func DefaultConfig() Config {
	return Config{
		ClearStorageTimeout: 10 * time.Second,
	}
}

// NewFromConfig creates a new Manager from the provided Config.
// Store and registry are supplied via options.
func NewFromConfig(cfg Config, opts ...Option) *Manager {
	configOpts := []Option{
		WithConfig(cfg),
	}

	configOpts = append(configOpts, opts...)

	return New(configOpts...)
}

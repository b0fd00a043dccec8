package session

import (
	"log/slog"
	"time"
)

// Option is a functional option for configuring the Manager
type Option func(*Manager)

// WithStore sets the saved-session store
func WithStore(store Store) Option {
	return func(m *Manager) {
		m.store = store
	}
}

// WithRegistry sets the account session registry
func WithRegistry(registry Registry) Option {
	return func(m *Manager) {
		m.registry = registry
	}
}

// WithClassifier sets a custom token classifier
func WithClassifier(classifier TokenClassifier) Option {
	return func(m *Manager) {
		m.classifier = classifier
	}
}

// WithConfig sets a static configuration snapshot
func WithConfig(config Config) Option {
	return func(m *Manager) {
		m.configFn = func() Config { return config }
	}
}

// WithConfigSource sets a dynamic configuration source, read once per
// operation at call time
func WithConfigSource(fn ConfigSource) Option {
	return func(m *Manager) {
		if fn != nil {
			m.configFn = fn
		}
	}
}

// WithClearStorageTimeout overrides the storage-clear bound
func WithClearStorageTimeout(timeout time.Duration) Option {
	return func(m *Manager) {
		cfg := m.configFn()
		cfg.ClearStorageTimeout = timeout
		m.configFn = func() Config { return cfg }
	}
}

// WithLogger sets the logger used for lifecycle events
func WithLogger(l *slog.Logger) Option {
	return func(m *Manager) {
		if l != nil {
			m.logger = l
		}
	}
}

package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/zhhb/electronmail/pkg/session"
)

func TestDefaultConfig(t *testing.T) {
	cfg := session.DefaultConfig()
	assert.Equal(t, 10*time.Second, cfg.ClearStorageTimeout)
}

func TestNewFromConfig(t *testing.T) {
	registry := session.NewMemoryRegistry()
	registry.Register(testLogin, &fakeAccount{jar: &fakeJar{}, clearDelay: time.Second})

	manager := session.NewFromConfig(
		session.Config{ClearStorageTimeout: 30 * time.Millisecond},
		session.WithRegistry(registry),
	)

	err := manager.ResetBackendSession(context.Background(), testLogin)
	assert.ErrorIs(t, err, session.ErrClearStorageTimeout)
	assert.Contains(t, err.Error(), "30ms")
}

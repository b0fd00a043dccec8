package session

import (
	"context"
	"fmt"
	"sync"
)

// CookieJar is the cookie surface of a live embedded browsing context.
type CookieJar interface {
	// Get returns the cookies matching the filter.
	Get(ctx context.Context, filter CookieFilter) ([]Cookie, error)

	// Set writes a single cookie.
	Set(ctx context.Context, params SetCookieParams) error
}

// AccountSession is a handle to the live browsing context of one logged-in
// account, exposing the native primitives the lifecycle manager drives.
type AccountSession interface {
	Cookies() CookieJar

	// ClearStorageData wipes the context's storage. On some platform
	// configurations the native call is known to hang indefinitely; the
	// manager bounds it with a timeout rather than trusting it to return.
	ClearStorageData(ctx context.Context) error
}

// Registry resolves a login to its initialized account session. Resolution
// failure is fatal for the calling operation, never retried.
type Registry interface {
	Resolve(login string) (AccountSession, error)
}

// MemoryRegistry is a concurrency-safe Registry backed by a map. The embedding
// host registers each account session as its browsing context initializes.
type MemoryRegistry struct {
	mu       sync.RWMutex
	sessions map[string]AccountSession
}

// NewMemoryRegistry creates an empty registry.
func NewMemoryRegistry() *MemoryRegistry {
	return &MemoryRegistry{sessions: make(map[string]AccountSession)}
}

// Register binds a login to its live session handle, replacing any prior binding.
func (r *MemoryRegistry) Register(login string, acc AccountSession) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[login] = acc
}

// Unregister drops the binding for a login, typically on context teardown.
func (r *MemoryRegistry) Unregister(login string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, login)
}

// Resolve returns the session handle for a login.
func (r *MemoryRegistry) Resolve(login string) (AccountSession, error) {
	r.mu.RLock()
	acc, ok := r.sessions[login]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrAccountNotInitialized, login)
	}
	return acc, nil
}

package session

import (
	"context"
	"maps"
	"sync"
)

// MemoryStore implements Store using in-memory maps. Suitable for tests and
// for hosts that do not persist sessions across restarts.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[Key]*SavedSession
	patches  map[Key]StoragePatch
}

// NewMemoryStore creates a new in-memory saved-session store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[Key]*SavedSession),
		patches:  make(map[Key]StoragePatch),
	}
}

// Get retrieves the saved session for a key
func (m *MemoryStore) Get(ctx context.Context, key Key) (*SavedSession, error) {
	m.mu.RLock()
	saved, exists := m.sessions[key]
	m.mu.RUnlock()

	if !exists {
		return nil, ErrSessionNotFound
	}

	return saved.Clone(), nil
}

// Save replaces the record for the session's key
func (m *MemoryStore) Save(ctx context.Context, saved *SavedSession) error {
	if saved == nil {
		return ErrSessionNotFound
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.sessions[saved.Key] = saved.Clone()
	return nil
}

// Clear removes the record for a key
func (m *MemoryStore) Clear(ctx context.Context, key Key) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, key)
	return nil
}

// SavePatch stores a storage patch for a key
func (m *MemoryStore) SavePatch(ctx context.Context, key Key, patch StoragePatch) error {
	patchCopy := make(StoragePatch, len(patch))
	maps.Copy(patchCopy, patch)

	m.mu.Lock()
	defer m.mu.Unlock()

	m.patches[key] = patchCopy
	return nil
}

// GetPatch retrieves the stored patch for a key
func (m *MemoryStore) GetPatch(ctx context.Context, key Key) (StoragePatch, error) {
	m.mu.RLock()
	patch, exists := m.patches[key]
	m.mu.RUnlock()

	if !exists {
		return nil, ErrPatchNotFound
	}

	patchCopy := make(StoragePatch, len(patch))
	maps.Copy(patchCopy, patch)
	return patchCopy, nil
}

// Stats returns store contents counts, mainly for diagnostics
func (m *MemoryStore) Stats() (sessions, patches int) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions), len(m.patches)
}

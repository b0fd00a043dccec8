package session

import "context"

// Store defines the interface for saved-session persistence. Implementations
// own durability; the manager owns the protocol for producing and consuming
// records.
type Store interface {
	// Get retrieves the saved session for a key, ErrSessionNotFound when absent.
	Get(ctx context.Context, key Key) (*SavedSession, error)

	// Save persists a record wholesale, replacing any prior record for its key.
	Save(ctx context.Context, saved *SavedSession) error

	// Clear removes the record for a key. Clearing an absent key is not an error.
	Clear(ctx context.Context, key Key) error

	// SavePatch persists a storage patch for a key, independent of any full record.
	SavePatch(ctx context.Context, key Key, patch StoragePatch) error

	// GetPatch retrieves the stored patch for a key, ErrPatchNotFound when absent.
	GetPatch(ctx context.Context, key Key) (StoragePatch, error)
}

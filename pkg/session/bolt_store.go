package session

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"
)

var (
	boltSessionsBucket = []byte("sessions")
	boltPatchesBucket  = []byte("session_patches")
)

// BoltStore implements Store backed by a bbolt database file, the natural
// on-disk store for a single-user desktop host.
type BoltStore struct {
	db *bbolt.DB
}

// NewBoltStore wraps an already-open bbolt database
func NewBoltStore(db *bbolt.DB) (*BoltStore, error) {
	err := db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(boltSessionsBucket); err != nil {
			return err
		}
		_, err := tx.CreateBucketIfNotExists(boltPatchesBucket)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("create session buckets: %w", err)
	}
	return &BoltStore{db: db}, nil
}

// OpenBoltStore opens (or creates) a bbolt database at path and returns a
// store backed by it
func OpenBoltStore(path string, options *bbolt.Options) (*BoltStore, error) {
	db, err := bbolt.Open(path, 0600, options)
	if err != nil {
		return nil, fmt.Errorf("open session db: %w", err)
	}
	return NewBoltStore(db)
}

// Close closes the underlying database
func (s *BoltStore) Close() error {
	return s.db.Close()
}

func boltKey(key Key) []byte {
	return []byte(key.Login + "\x00" + key.APIOrigin)
}

// Get retrieves the saved session for a key
func (s *BoltStore) Get(ctx context.Context, key Key) (*SavedSession, error) {
	var saved SavedSession
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(boltSessionsBucket).Get(boltKey(key))
		if data == nil {
			return ErrSessionNotFound
		}
		return json.Unmarshal(data, &saved)
	})
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

// Save replaces the record for the session's key
func (s *BoltStore) Save(ctx context.Context, saved *SavedSession) error {
	if saved == nil {
		return ErrSessionNotFound
	}

	data, err := json.Marshal(saved)
	if err != nil {
		return fmt.Errorf("encode saved session: %w", err)
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(boltSessionsBucket).Put(boltKey(saved.Key), data)
	})
}

// Clear removes the record for a key
func (s *BoltStore) Clear(ctx context.Context, key Key) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(boltSessionsBucket).Delete(boltKey(key))
	})
}

// SavePatch stores a storage patch for a key
func (s *BoltStore) SavePatch(ctx context.Context, key Key, patch StoragePatch) error {
	data, err := json.Marshal(patch)
	if err != nil {
		return fmt.Errorf("encode storage patch: %w", err)
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(boltPatchesBucket).Put(boltKey(key), data)
	})
}

// GetPatch retrieves the stored patch for a key
func (s *BoltStore) GetPatch(ctx context.Context, key Key) (StoragePatch, error) {
	var patch StoragePatch
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(boltPatchesBucket).Get(boltKey(key))
		if data == nil {
			return ErrPatchNotFound
		}
		return json.Unmarshal(data, &patch)
	})
	if err != nil {
		return nil, err
	}
	return patch, nil
}

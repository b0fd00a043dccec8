package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const (
	redisSessionPrefix = "session:"
	redisPatchPrefix   = "session-patch:"
)

// RedisStore implements Store on top of a Redis client, JSON-encoding records.
// Records never expire: saved sessions outlive host restarts and are removed
// only by an explicit Clear.
type RedisStore struct {
	client redis.UniversalClient
}

// NewRedisStore creates a Redis-backed saved-session store
func NewRedisStore(client redis.UniversalClient) *RedisStore {
	return &RedisStore{client: client}
}

func redisSessionKey(key Key) string {
	return redisSessionPrefix + key.Login + ":" + key.APIOrigin
}

func redisPatchKey(key Key) string {
	return redisPatchPrefix + key.Login + ":" + key.APIOrigin
}

// Get retrieves the saved session for a key
func (s *RedisStore) Get(ctx context.Context, key Key) (*SavedSession, error) {
	data, err := s.client.Get(ctx, redisSessionKey(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("redis get session: %w", err)
	}

	var saved SavedSession
	if err := json.Unmarshal(data, &saved); err != nil {
		return nil, fmt.Errorf("decode saved session: %w", err)
	}
	return &saved, nil
}

// Save replaces the record for the session's key
func (s *RedisStore) Save(ctx context.Context, saved *SavedSession) error {
	if saved == nil {
		return ErrSessionNotFound
	}

	data, err := json.Marshal(saved)
	if err != nil {
		return fmt.Errorf("encode saved session: %w", err)
	}

	if err := s.client.Set(ctx, redisSessionKey(saved.Key), data, 0).Err(); err != nil {
		return fmt.Errorf("redis save session: %w", err)
	}
	return nil
}

// Clear removes the record for a key
func (s *RedisStore) Clear(ctx context.Context, key Key) error {
	if err := s.client.Del(ctx, redisSessionKey(key)).Err(); err != nil {
		return fmt.Errorf("redis clear session: %w", err)
	}
	return nil
}

// SavePatch stores a storage patch for a key
func (s *RedisStore) SavePatch(ctx context.Context, key Key, patch StoragePatch) error {
	data, err := json.Marshal(patch)
	if err != nil {
		return fmt.Errorf("encode storage patch: %w", err)
	}

	if err := s.client.Set(ctx, redisPatchKey(key), data, 0).Err(); err != nil {
		return fmt.Errorf("redis save patch: %w", err)
	}
	return nil
}

// GetPatch retrieves the stored patch for a key
func (s *RedisStore) GetPatch(ctx context.Context, key Key) (StoragePatch, error) {
	data, err := s.client.Get(ctx, redisPatchKey(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrPatchNotFound
		}
		return nil, fmt.Errorf("redis get patch: %w", err)
	}

	var patch StoragePatch
	if err := json.Unmarshal(data, &patch); err != nil {
		return nil, fmt.Errorf("decode storage patch: %w", err)
	}
	return patch, nil
}

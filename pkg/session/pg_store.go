package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var pgSchema = []string{
	`CREATE TABLE IF NOT EXISTS proton_sessions (
		login      TEXT  NOT NULL,
		api_origin TEXT  NOT NULL,
		record     JSONB NOT NULL,
		PRIMARY KEY (login, api_origin)
	)`,
	`CREATE TABLE IF NOT EXISTS proton_session_patches (
		login      TEXT  NOT NULL,
		api_origin TEXT  NOT NULL,
		patch      JSONB NOT NULL,
		PRIMARY KEY (login, api_origin)
	)`,
}

// PGStore implements Store on a PostgreSQL pool, for deployments where saved
// sessions are persisted centrally rather than on the host machine.
type PGStore struct {
	pool *pgxpool.Pool
}

// NewPGStore creates the session tables if needed and returns a store backed
// by the pool
func NewPGStore(ctx context.Context, pool *pgxpool.Pool) (*PGStore, error) {
	for _, stmt := range pgSchema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return nil, fmt.Errorf("create session tables: %w", err)
		}
	}
	return &PGStore{pool: pool}, nil
}

// Get retrieves the saved session for a key
func (s *PGStore) Get(ctx context.Context, key Key) (*SavedSession, error) {
	var data []byte
	err := s.pool.QueryRow(ctx,
		`SELECT record FROM proton_sessions WHERE login = $1 AND api_origin = $2`,
		key.Login, key.APIOrigin).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("select session: %w", err)
	}

	var saved SavedSession
	if err := json.Unmarshal(data, &saved); err != nil {
		return nil, fmt.Errorf("decode saved session: %w", err)
	}
	return &saved, nil
}

// Save replaces the record for the session's key
func (s *PGStore) Save(ctx context.Context, saved *SavedSession) error {
	if saved == nil {
		return ErrSessionNotFound
	}

	data, err := json.Marshal(saved)
	if err != nil {
		return fmt.Errorf("encode saved session: %w", err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO proton_sessions (login, api_origin, record) VALUES ($1, $2, $3)
		 ON CONFLICT (login, api_origin) DO UPDATE SET record = EXCLUDED.record`,
		saved.Key.Login, saved.Key.APIOrigin, data)
	if err != nil {
		return fmt.Errorf("upsert session: %w", err)
	}
	return nil
}

// Clear removes the record for a key
func (s *PGStore) Clear(ctx context.Context, key Key) error {
	_, err := s.pool.Exec(ctx,
		`DELETE FROM proton_sessions WHERE login = $1 AND api_origin = $2`,
		key.Login, key.APIOrigin)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// SavePatch stores a storage patch for a key
func (s *PGStore) SavePatch(ctx context.Context, key Key, patch StoragePatch) error {
	data, err := json.Marshal(patch)
	if err != nil {
		return fmt.Errorf("encode storage patch: %w", err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO proton_session_patches (login, api_origin, patch) VALUES ($1, $2, $3)
		 ON CONFLICT (login, api_origin) DO UPDATE SET patch = EXCLUDED.patch`,
		key.Login, key.APIOrigin, data)
	if err != nil {
		return fmt.Errorf("upsert patch: %w", err)
	}
	return nil
}

// GetPatch retrieves the stored patch for a key
func (s *PGStore) GetPatch(ctx context.Context, key Key) (StoragePatch, error) {
	var data []byte
	err := s.pool.QueryRow(ctx,
		`SELECT patch FROM proton_session_patches WHERE login = $1 AND api_origin = $2`,
		key.Login, key.APIOrigin).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPatchNotFound
		}
		return nil, fmt.Errorf("select patch: %w", err)
	}

	var patch StoragePatch
	if err := json.Unmarshal(data, &patch); err != nil {
		return nil, fmt.Errorf("decode storage patch: %w", err)
	}
	return patch, nil
}

package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

// Manager orchestrates the save / restore / patch / reset lifecycle of
// authenticated web-application sessions, one per (login, backend origin) pair.
//
// Operations are not mutually excluded per key: concurrent save/reset/apply
// calls for the same key interleave at every store and native-call boundary.
// Callers needing cross-call atomicity must serialize at a higher layer.
type Manager struct {
	store      Store
	registry   Registry
	classifier TokenClassifier
	configFn   ConfigSource
	logger     *slog.Logger
}

// New creates a new lifecycle manager with the given options
func New(opts ...Option) *Manager {
	m := &Manager{
		configFn: func() Config { return DefaultConfig() },
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.store == nil {
		m.store = NewMemoryStore()
	}

	if m.registry == nil {
		// Fail fast on misconfiguration: every destructive operation needs a
		// live session handle to act on
		panic("session: account session registry is required")
	}

	if m.classifier == nil {
		m.classifier = NewPrefixClassifier()
	}

	return m
}

// ResolveSavedClientSession returns the client-facing view of the saved
// session for a key: the storage blob and window name. It returns nil when no
// record exists or when the record has no window name, since a session without
// its window identity cannot be re-attached to the UI. Pure read, no side
// effects; cookies are restored separately via ApplySavedBackendSession.
func (m *Manager) ResolveSavedClientSession(ctx context.Context, key Key) (*ClientSession, error) {
	saved, err := m.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return saved.ClientSession(), nil
}

// SaveSession captures the live cookie set of the resolved account session and
// persists it together with the supplied storage blob and window name,
// replacing any prior record for the key.
//
// The live cookie set must classify to at most one access-token and at most
// one refresh-token cookie; an ambiguous set fails the save before any write,
// because persisting it would make restoration non-deterministic.
func (m *Manager) SaveSession(ctx context.Context, key Key, client ClientSession) error {
	acc, err := m.registry.Resolve(key.Login)
	if err != nil {
		return err
	}

	cookies, err := acc.Cookies().Get(ctx, CookieFilter{})
	if err != nil {
		return fmt.Errorf("read live cookies: %w", err)
	}

	tokens := m.classifier.Classify(cookies)
	if len(tokens.AccessTokens) > 1 || len(tokens.RefreshTokens) > 1 {
		return fmt.Errorf("%w: access token cookies: %d, refresh token cookies: %d",
			ErrAmbiguousTokens, len(tokens.AccessTokens), len(tokens.RefreshTokens))
	}

	saved := &SavedSession{
		Key:            key,
		Cookies:        cookies,
		SessionStorage: client.SessionStorage,
		Window:         WindowIdentity{Name: client.WindowName},
	}

	if err := m.store.Save(ctx, saved); err != nil {
		return err
	}

	m.logger.DebugContext(ctx, "session saved",
		slog.String("login", key.Login),
		slog.String("origin", key.APIOrigin),
		slog.Int("cookies", len(cookies)))

	return nil
}

// ResetBackendSession clears the storage of the login's live browsing context,
// bounded by the configured timeout. A timeout is fatal and propagated: the
// native clear may still complete afterwards, so callers must treat the
// session state as indeterminate rather than cleanly cleared.
func (m *Manager) ResetBackendSession(ctx context.Context, login string) error {
	acc, err := m.registry.Resolve(login)
	if err != nil {
		return err
	}

	timeout := m.configFn().ClearStorageTimeout
	if err := m.clearStorageBounded(ctx, acc, timeout); err != nil {
		return err
	}

	m.logger.DebugContext(ctx, "backend session reset", slog.String("login", login))
	return nil
}

// clearStorageBounded races the native storage clear against a deadline timer.
// The native call is known to hang indefinitely on some platform
// configurations; losing the race does not cancel it, only stops waiting.
func (m *Manager) clearStorageBounded(ctx context.Context, acc AccountSession, timeout time.Duration) error {
	done := make(chan error, 1)
	go func() {
		done <- acc.ClearStorageData(ctx)
	}()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("clear storage data: %w", err)
		}
		return nil
	case <-timer.C:
		return fmt.Errorf("%w: session clearing failed in %dms", ErrClearStorageTimeout, timeout.Milliseconds())
	case <-ctx.Done():
		return ctx.Err()
	}
}

// ApplySavedBackendSession restores the saved token cookies into the login's
// live browsing context. The live backend session is always reset first so
// restoration starts from a clean slate instead of mixing stale and restored
// cookies; the reset happens even when nothing turns out to be restorable.
//
// It returns false, without attempting any cookie write, when no record exists
// or when either token subset is empty. When several cookies classify into one
// subset the last entry wins; the save-side invariant makes that a single
// entry in practice, but restoration stays tolerant of looser stored data.
// Both token cookies are applied concurrently and must both succeed.
func (m *Manager) ApplySavedBackendSession(ctx context.Context, key Key) (bool, error) {
	if err := m.ResetBackendSession(ctx, key.Login); err != nil {
		return false, err
	}

	saved, err := m.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return false, nil
		}
		return false, err
	}

	tokens := m.classifier.Classify(saved.Cookies)
	access, ok := lastCookie(tokens.AccessTokens)
	if !ok {
		return false, nil
	}
	refresh, ok := lastCookie(tokens.RefreshTokens)
	if !ok {
		return false, nil
	}

	acc, err := m.registry.Resolve(key.Login)
	if err != nil {
		return false, err
	}

	jar := acc.Cookies()
	originURL := originBaseURL(key.APIOrigin)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return jar.Set(gctx, restoreParams(access, originURL))
	})
	g.Go(func() error {
		return jar.Set(gctx, restoreParams(refresh, originURL))
	})
	if err := g.Wait(); err != nil {
		return false, fmt.Errorf("restore token cookies: %w", err)
	}

	m.logger.InfoContext(ctx, "backend session restored",
		slog.String("login", key.Login),
		slog.String("origin", key.APIOrigin))

	return true, nil
}

// SaveStoragePatch persists an incremental storage update for the key,
// independent of cookie and window state. Patches arrive more often than full
// saves and must not force a cookie re-capture.
func (m *Manager) SaveStoragePatch(ctx context.Context, key Key, patch StoragePatch) error {
	return m.store.SavePatch(ctx, key, patch)
}

// ResolveStoragePatch returns the stored patch for the key, or nil when none
// exists. Pure read-through.
func (m *Manager) ResolveStoragePatch(ctx context.Context, key Key) (StoragePatch, error) {
	patch, err := m.store.GetPatch(ctx, key)
	if err != nil {
		if errors.Is(err, ErrPatchNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return patch, nil
}

func lastCookie(cookies []Cookie) (Cookie, bool) {
	if len(cookies) == 0 {
		return Cookie{}, false
	}
	return cookies[len(cookies)-1], true
}

func originBaseURL(origin string) string {
	return strings.TrimRight(origin, "/") + "/"
}

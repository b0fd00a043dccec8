// Package session manages persistence, restoration and teardown of
// authenticated Proton web sessions for a desktop host that embeds one
// isolated browsing context per logged-in account. Each context carries HTTP
// cookies, a window-scoped identifier and a key-value storage blob; all three
// are captured, restored and invalidated consistently per (login, backend
// origin) pair.
//
// # Architecture
//
// A Manager orchestrates the lifecycle. It relies on a Store to persist
// SavedSession records and storage patches, on a Registry to resolve a login
// to its live AccountSession handle, and on a TokenClassifier to recognize
// the access-token and refresh-token cookies within a captured set.
//
//	┌──────────┐  resolve  ┌───────────────┐
//	│ Registry │ ────────► │ AccountSession │ (live cookies + storage)
//	└──────────┘           └───────────────┘
//	       ▲                       │
//	       │                       ▼
//	┌─────────────────────────────────┐
//	│             Manager             │
//	└─────────────────────────────────┘
//	       │   save / resolve / patch
//	       ▼
//	┌────────┐
//	│ Store  │ (memory, bbolt, redis, postgres)
//	└────────┘
//
// Saving captures the full live cookie set and fails when it classifies to
// more than one access or refresh token, guarding the persisted credential
// set against ambiguity. Restoring always resets the live backend session
// first, then re-applies the two token cookies concurrently with SameSite
// forced to None and Secure forced on. The native storage clear used by the
// reset is raced against a configurable deadline because it is known to hang
// on some platform configurations; the loser of the race is abandoned, not
// cancelled.
//
// # Usage
//
//	registry := session.NewMemoryRegistry()
//	registry.Register("user@proton.me", liveSession)
//
//	manager := session.New(
//	    session.WithRegistry(registry),
//	    session.WithStore(store),
//	)
//
//	key := session.Key{Login: "user@proton.me", APIOrigin: "https://mail.proton.me"}
//	if err := manager.SaveSession(ctx, key, session.ClientSession{
//	    SessionStorage: blob,
//	    WindowName:     windowName,
//	}); err != nil {
//	    // handle error
//	}
//
//	restored, err := manager.ApplySavedBackendSession(ctx, key)
//
// # Error Handling
//
// Missing data is not an error: resolving an absent or window-less record
// yields nil, applying with no restorable tokens yields false. Fatal
// conditions surface as wrapped sentinel errors:
//
//   - ErrAmbiguousTokens       – live cookie set has >1 access or refresh token
//   - ErrClearStorageTimeout   – storage clear exceeded its bound
//   - ErrAccountNotInitialized – login has no live browsing context
//
// Nothing is logged-and-swallowed: every fatal condition propagates to the
// caller, and state on failure is never reported as success.
//
// # Concurrency
//
// Operations for the same key are not mutually excluded; calls interleave at
// every store and native-call suspension point. Serialize at a higher layer
// when cross-call atomicity is required.
package session

package session

import "errors"

var (
	// ErrSessionNotFound indicates no saved session exists for the key
	ErrSessionNotFound = errors.New("session.not_found")

	// ErrPatchNotFound indicates no storage patch exists for the key
	ErrPatchNotFound = errors.New("session.patch_not_found")

	// ErrAccountNotInitialized indicates the login has no live browsing context
	ErrAccountNotInitialized = errors.New("session.account_not_initialized")

	// ErrAmbiguousTokens indicates the live cookie set classified to more than
	// one access or refresh token, so persisting it would make restoration
	// non-deterministic
	ErrAmbiguousTokens = errors.New("session.ambiguous_token_cookies")

	// ErrClearStorageTimeout indicates the native storage clear did not
	// complete within the configured bound; session state is indeterminate
	ErrClearStorageTimeout = errors.New("session.clear_storage_timeout")

	// ErrNoRegistry indicates no account session registry is configured
	ErrNoRegistry = errors.New("session.no_registry")

	// ErrNoStore indicates no store is configured
	ErrNoStore = errors.New("session.no_store")
)

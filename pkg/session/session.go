package session

import "maps"

// Key identifies a saved session: one record per (account login, backend origin) pair.
type Key struct {
	Login     string `json:"login"`
	APIOrigin string `json:"apiEndpointOrigin"`
}

// StorageBlob is the embedded context's key-value storage state, treated as an
// opaque JSON-serializable blob.
type StorageBlob map[string]any

// StoragePatch is an incremental update to the storage blob, persisted on the
// independent patch channel.
type StoragePatch = StorageBlob

// WindowIdentity correlates a saved session to the UI window it was captured from.
type WindowIdentity struct {
	Name string `json:"name"`
}

// ClientSession is the client-facing view of a saved session: the storage blob
// and the window name. Cookies are restored separately through the backend path.
type ClientSession struct {
	SessionStorage StorageBlob `json:"sessionStorage"`
	WindowName     string      `json:"windowName"`
}

// SavedSession is the persisted unit. A record with an empty window name is
// treated as incompletely captured and unusable for restoration.
type SavedSession struct {
	Key            Key            `json:"key"`
	Cookies        []Cookie       `json:"cookies"`
	SessionStorage StorageBlob    `json:"sessionStorage"`
	Window         WindowIdentity `json:"window"`
}

// Clone returns a deep copy so stores can hand out records without aliasing
// caller-held state.
func (s *SavedSession) Clone() *SavedSession {
	if s == nil {
		return nil
	}
	out := &SavedSession{
		Key:    s.Key,
		Window: s.Window,
	}
	if s.Cookies != nil {
		out.Cookies = make([]Cookie, len(s.Cookies))
		copy(out.Cookies, s.Cookies)
	}
	if s.SessionStorage != nil {
		out.SessionStorage = make(StorageBlob, len(s.SessionStorage))
		maps.Copy(out.SessionStorage, s.SessionStorage)
	}
	return out
}

// ClientSession projects the record into its client-facing view, or nil when
// the record is missing or was captured without a window name.
func (s *SavedSession) ClientSession() *ClientSession {
	if s == nil || s.Window.Name == "" {
		return nil
	}
	return &ClientSession{
		SessionStorage: s.SessionStorage,
		WindowName:     s.Window.Name,
	}
}

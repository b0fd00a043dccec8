package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/zhhb/electronmail/pkg/session"
)

// Handler exposes the session lifecycle operations as a JSON request/response
// surface, one endpoint per operation. It abstracts the IPC boundary between
// the embedded web clients and the lifecycle core; transport mechanics beyond
// plain HTTP are out of scope.
type Handler struct {
	manager *session.Manager
	logger  *slog.Logger
}

// NewHandler creates a handler around a lifecycle manager
func NewHandler(manager *session.Manager, opts ...Option) *Handler {
	h := &Handler{
		manager: manager,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Option configures the Handler
type Option func(*Handler)

// WithLogger sets the request logger
func WithLogger(l *slog.Logger) Option {
	return func(h *Handler) {
		if l != nil {
			h.logger = l
		}
	}
}

// Router returns a chi router with every lifecycle endpoint mounted
func (h *Handler) Router() chi.Router {
	r := chi.NewRouter()
	r.Route("/sessions/{login}", func(r chi.Router) {
		r.Get("/", h.resolveClientSession)
		r.Put("/", h.saveSession)
		r.Post("/reset", h.resetBackendSession)
		r.Post("/apply", h.applyBackendSession)
		r.Get("/storage-patch", h.resolveStoragePatch)
		r.Put("/storage-patch", h.saveStoragePatch)
	})
	return r
}

func sessionKey(r *http.Request) (session.Key, bool) {
	key := session.Key{
		Login:     chi.URLParam(r, "login"),
		APIOrigin: r.URL.Query().Get("origin"),
	}
	return key, key.Login != "" && key.APIOrigin != ""
}

func (h *Handler) resolveClientSession(w http.ResponseWriter, r *http.Request) {
	key, ok := sessionKey(r)
	if !ok {
		respondError(w, http.StatusBadRequest, errMissingKey)
		return
	}

	client, err := h.manager.ResolveSavedClientSession(r.Context(), key)
	if err != nil {
		h.respondFailure(w, r, err)
		return
	}
	if client == nil {
		respondError(w, http.StatusNotFound, session.ErrSessionNotFound)
		return
	}

	respondJSON(w, http.StatusOK, client)
}

func (h *Handler) saveSession(w http.ResponseWriter, r *http.Request) {
	key, ok := sessionKey(r)
	if !ok {
		respondError(w, http.StatusBadRequest, errMissingKey)
		return
	}

	var client session.ClientSession
	if err := json.NewDecoder(r.Body).Decode(&client); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	if err := h.manager.SaveSession(r.Context(), key, client); err != nil {
		h.respondFailure(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) resetBackendSession(w http.ResponseWriter, r *http.Request) {
	login := chi.URLParam(r, "login")
	if login == "" {
		respondError(w, http.StatusBadRequest, errMissingKey)
		return
	}

	if err := h.manager.ResetBackendSession(r.Context(), login); err != nil {
		h.respondFailure(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) applyBackendSession(w http.ResponseWriter, r *http.Request) {
	key, ok := sessionKey(r)
	if !ok {
		respondError(w, http.StatusBadRequest, errMissingKey)
		return
	}

	restored, err := h.manager.ApplySavedBackendSession(r.Context(), key)
	if err != nil {
		h.respondFailure(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{"restored": restored})
}

func (h *Handler) saveStoragePatch(w http.ResponseWriter, r *http.Request) {
	key, ok := sessionKey(r)
	if !ok {
		respondError(w, http.StatusBadRequest, errMissingKey)
		return
	}

	var patch session.StoragePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	if err := h.manager.SaveStoragePatch(r.Context(), key, patch); err != nil {
		h.respondFailure(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) resolveStoragePatch(w http.ResponseWriter, r *http.Request) {
	key, ok := sessionKey(r)
	if !ok {
		respondError(w, http.StatusBadRequest, errMissingKey)
		return
	}

	patch, err := h.manager.ResolveStoragePatch(r.Context(), key)
	if err != nil {
		h.respondFailure(w, r, err)
		return
	}
	if patch == nil {
		respondError(w, http.StatusNotFound, session.ErrPatchNotFound)
		return
	}

	respondJSON(w, http.StatusOK, patch)
}

// respondFailure maps lifecycle errors onto HTTP statuses and logs fatal ones.
func (h *Handler) respondFailure(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, session.ErrAmbiguousTokens):
		status = http.StatusConflict
	case errors.Is(err, session.ErrClearStorageTimeout):
		status = http.StatusGatewayTimeout
	case errors.Is(err, session.ErrAccountNotInitialized):
		status = http.StatusConflict
	}

	h.logger.ErrorContext(r.Context(), "session operation failed",
		slog.String("path", r.URL.Path),
		slog.String("error", err.Error()))

	respondError(w, status, err)
}

var errMissingKey = errors.New("login and origin are required")

type errorBody struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func respondError(w http.ResponseWriter, status int, err error) {
	respondJSON(w, status, errorBody{Error: err.Error()})
}

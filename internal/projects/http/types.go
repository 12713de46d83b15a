package http

import "github.com/promaster-id/konstruksi-backend/internal/projects/store"

// Handler bundles the dependencies for projects HTTP endpoints.
type Handler struct {
	store *store.Store
}

func New(store *store.Store) *Handler {
	return &Handler{store: store}
}

package handlers

import "github.com/go-chi/chi/v5"

// Register mounts the service routes. Anything else falls through to chi's
// default 404.
func (h *Handler) Register(r chi.Router) {
	r.Get("/", Wrap(h.Index))
	r.Get("/health", Wrap(h.Health))
	r.Get("/status", Wrap(h.Status))
}

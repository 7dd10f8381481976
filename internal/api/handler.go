// Package api provides HTTP handlers for the Guidepost API.
//
//nolint:revive // "api" package name is intentionally concise for this layer.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/ashureev/guidepost/internal/ai"
	"github.com/ashureev/guidepost/internal/config"
	"github.com/ashureev/guidepost/internal/fallback"
	"github.com/ashureev/guidepost/internal/ratelimit"
	"github.com/ashureev/guidepost/internal/store"
)

// Handler provides common dependencies for the API handlers.
type Handler struct {
	repo    store.Repository
	gateway *ai.Gateway // nil when no credential is configured
	fb      *fallback.Generator
	limiter *ratelimit.Limiter
	stats   *Stats
	cfg     *config.Config
}

// NewHandler creates a new Handler. gateway may be nil; every AI path then
// degrades to fallback content.
func NewHandler(repo store.Repository, gateway *ai.Gateway, fb *fallback.Generator, limiter *ratelimit.Limiter, cfg *config.Config) *Handler {
	return &Handler{
		repo:    repo,
		gateway: gateway,
		fb:      fb,
		limiter: limiter,
		stats:   &Stats{},
		cfg:     cfg,
	}
}

// Stats returns the handler's request counters.
func (h *Handler) Stats() *Stats {
	return h.stats
}

func (h *Handler) aiEnabled() bool {
	return h.gateway != nil
}

// JSON writes a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, `{"error": "failed to encode response"}`, http.StatusInternalServerError)
	}
}

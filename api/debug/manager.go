package debug

import (
	"context"
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type CacheClearer interface {
	ClearAll(ctx context.Context) error
	DeletePattern(ctx context.Context, pattern string) error
}

type DebugRoutesManager struct {
	logger     *gecho.Logger
	cache      CacheClearer
	enabled    bool
	requireKey func(http.Handler) http.Handler
}

// NewDebugRoutesManager registers nothing unless enabled; requireKey guards every route.
func NewDebugRoutesManager(logger *gecho.Logger, cache CacheClearer, enabled bool, requireKey func(http.Handler) http.Handler) *DebugRoutesManager {
	return &DebugRoutesManager{
		logger:     logger,
		cache:      cache,
		enabled:    enabled,
		requireKey: requireKey,
	}
}

func (drm *DebugRoutesManager) RegisterRoutes(r chi.Router) {
	if !drm.enabled {
		return
	}
	r.Route("/debug", func(r chi.Router) {
		r.Use(drm.requireKey)
		r.Post("/cache/clear", drm.ClearCache)
	})
}

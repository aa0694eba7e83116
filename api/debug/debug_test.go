package debug

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"favour_crochet_server/config"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

type fakeCache struct {
	clears   int
	patterns []string
}

func (f *fakeCache) ClearAll(ctx context.Context) error {
	f.clears++
	return nil
}

func (f *fakeCache) DeletePattern(ctx context.Context, pattern string) error {
	f.patterns = append(f.patterns, pattern)
	return nil
}

func passThrough(next http.Handler) http.Handler { return next }

func TestDebugRoutes(t *testing.T) {
	t.Run("disabled registers nothing", func(t *testing.T) {
		cache := &fakeCache{}
		r := chi.NewRouter()
		NewDebugRoutesManager(config.NewLogger(false), cache, false, passThrough).RegisterRoutes(r)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/debug/cache/clear", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Zero(t, cache.clears)
	})

	t.Run("enabled clears cache", func(t *testing.T) {
		cache := &fakeCache{}
		r := chi.NewRouter()
		NewDebugRoutesManager(config.NewLogger(false), cache, true, passThrough).RegisterRoutes(r)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/debug/cache/clear", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 1, cache.clears)
	})

	t.Run("pattern narrows removal", func(t *testing.T) {
		cache := &fakeCache{}
		r := chi.NewRouter()
		NewDebugRoutesManager(config.NewLogger(false), cache, true, passThrough).RegisterRoutes(r)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/debug/cache/clear?pattern=product:*", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Zero(t, cache.clears)
		assert.Equal(t, []string{"product:*"}, cache.patterns)
	})

	t.Run("guard applies", func(t *testing.T) {
		cache := &fakeCache{}
		deny := func(http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusForbidden) })
		}
		r := chi.NewRouter()
		NewDebugRoutesManager(config.NewLogger(false), cache, true, deny).RegisterRoutes(r)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/debug/cache/clear", nil))
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Zero(t, cache.clears)
	})
}

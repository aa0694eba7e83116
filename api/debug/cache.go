package debug

import (
	"net/http"
	"strings"

	"github.com/MonkyMars/gecho"
)

// ClearCache handles POST /debug/cache/clear. An optional ?pattern= narrows the
// removal to matching keys, e.g. "product:*".
func (drm *DebugRoutesManager) ClearCache(w http.ResponseWriter, r *http.Request) {
	pattern := strings.TrimSpace(r.URL.Query().Get("pattern"))

	var err error
	if pattern == "" {
		err = drm.cache.ClearAll(r.Context())
	} else {
		err = drm.cache.DeletePattern(r.Context(), pattern)
	}
	if err != nil {
		drm.logger.Error("Failed to clear cache", gecho.Field("error", err), gecho.Field("pattern", pattern))
		gecho.InternalServerError(w,
			gecho.WithMessage("error.cache.clearFailed"),
			gecho.Send(),
		)
		return
	}

	drm.logger.Info("Cache cleared", gecho.Field("pattern", pattern))
	gecho.Success(w,
		gecho.WithMessage("success.cache.cleared"),
		gecho.WithData(map[string]string{"pattern": pattern}),
		gecho.Send(),
	)
}

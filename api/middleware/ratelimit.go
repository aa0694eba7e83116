package middleware

import (
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/MonkyMars/gecho"
)

// rateLimitBucket picks the limit for a request: writes share a stricter bucket.
func (mw *Middleware) rateLimitBucket(method string) (string, int, time.Duration) {
	if isSafeMethod(method) {
		return "general", mw.cfg.RateLimit.GeneralLimit, mw.cfg.RateLimit.GeneralWindow
	}
	return "write", mw.cfg.RateLimit.WriteLimit, mw.cfg.RateLimit.WriteWindow
}

// getClientIP returns the client address. RealIP has already applied proxy headers.
func getClientIP(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}

func skipRateLimit(path string) bool {
	return path == "/" || quietPath(path)
}

// RateLimitMiddleware counts requests per client IP and bucket. Counter failures let the request through.
func (mw *Middleware) RateLimitMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !mw.cfg.RateLimit.Enabled || mw.limiter == nil || skipRateLimit(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			clientIP := getClientIP(r)
			bucket, limit, window := mw.rateLimitBucket(r.Method)

			count, err := mw.limiter.IncrementRateLimit(r.Context(), clientIP, bucket, window)
			if err != nil {
				mw.logger.Warn("Rate limit cache error, allowing request",
					gecho.Field("error", err),
					gecho.Field("ip", clientIP),
					gecho.Field("bucket", bucket),
				)
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", limit))
			w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", max(0, limit-count)))

			if count > limit {
				mw.logger.Warn("Rate limit exceeded",
					gecho.Field("ip", clientIP),
					gecho.Field("bucket", bucket),
					gecho.Field("count", count),
					gecho.Field("limit", limit),
				)
				w.Header().Set("Retry-After", fmt.Sprintf("%d", int(window.Seconds())))
				gecho.TooManyRequests(w,
					gecho.WithMessage("error.rateLimitExceeded"),
					gecho.WithData(map[string]any{
						"limit":       limit,
						"window":      window.String(),
						"retry_after": int(window.Seconds()),
					}),
					gecho.Send(),
				)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

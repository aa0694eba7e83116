package middleware

import (
	"net/http"
	"strings"

	"github.com/MonkyMars/gecho"
)

// quietPath reports paths polled by probes and scrapers, which are not logged.
func quietPath(path string) bool {
	return path == "/metrics" || strings.HasPrefix(path, "/health")
}

// SetupLoggerMiddleware logs every request except probe traffic.
func (mw *Middleware) SetupLoggerMiddleware() func(http.Handler) http.Handler {
	logRequest := gecho.Handlers.CreateLoggingMiddleware(mw.logger)
	return func(next http.Handler) http.Handler {
		logged := logRequest(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if quietPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}
			logged.ServeHTTP(w, r)
		})
	}
}

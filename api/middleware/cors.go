package middleware

import (
	"github.com/rs/cors"
)

// SetupCORS builds the CORS handler. In debug mode every origin is allowed.
func (mw *Middleware) SetupCORS() *cors.Cors {
	opts := cors.Options{
		AllowedOrigins:   mw.cfg.Cors.AllowedOrigins,
		AllowedMethods:   mw.cfg.Cors.AllowedMethods,
		AllowedHeaders:   mw.cfg.Cors.AllowedHeaders,
		ExposedHeaders:   mw.cfg.Cors.ExposedHeaders,
		AllowCredentials: mw.cfg.Cors.AllowCredentials,
		MaxAge:           mw.cfg.Cors.MaxAge,
	}
	if mw.cfg.Cors.AllowAllOrigins {
		opts.AllowedOrigins = nil
		opts.AllowOriginFunc = func(string) bool { return true }
	}
	return cors.New(opts)
}

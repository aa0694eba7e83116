package api

import (
	"favour_crochet_server/api/middleware"
	"favour_crochet_server/config"
	"favour_crochet_server/services"
	"favour_crochet_server/structs"
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	chiware "github.com/go-chi/chi/v5/middleware"
)

func App(cfg *structs.Config, svc *services.ServiceManager) chi.Router {
	r := chi.NewRouter()

	// create loggers
	mwLogger := config.NewLogger(false)
	standardLogger := config.NewLogger(true)

	var limiter middleware.RateLimiter
	if cfg.RateLimit.Enabled && svc.CacheService.Enabled() {
		limiter = svc.CacheService
	}
	mw := middleware.NewMiddleware(cfg, mwLogger, limiter)

	// Core infra
	r.Use(chiware.RequestID)
	r.Use(chiware.RealIP)
	r.Use(chiware.Recoverer)
	r.Use(chiware.StripSlashes)

	// Limits & security
	r.Use(mw.AllowedHosts())
	r.Use(mw.BodyLimit(cfg.Server.MaxBodyBytes))
	r.Use(mw.SecurityHeaders())

	// Observability
	r.Use(mw.SetupLoggerMiddleware())
	r.Use(middleware.MetricsMiddleware)

	// CORS (must be before auth)
	r.Use(mw.SetupCORS().Handler)

	r.Use(mw.RateLimitMiddleware())

	NewRouterManager(standardLogger, cfg, mw, svc).RegisterRoutes(r)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		gecho.Success(w,
			gecho.WithMessage("Welcome to the "+cfg.Server.AppName+" API"),
			gecho.Send(),
		)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		gecho.NotFound(w,
			gecho.WithMessage("error.notFound"),
			gecho.Send(),
		)
	})

	return r
}

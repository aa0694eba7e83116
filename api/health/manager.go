package health

import (
	"context"
	"favour_crochet_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Checker reports the state of the process and its dependencies.
type Checker interface {
	GetServerHealthStatus() services.ServerHealthStatus
	GetDatabaseHealthStatus(ctx context.Context) (services.DependencyHealthStatus, error)
	GetCacheHealthStatus(ctx context.Context) (services.DependencyHealthStatus, error)
}

type HealthRoutesManager struct {
	logger  *gecho.Logger
	checker Checker
}

func NewHealthRoutesManager(logger *gecho.Logger, checker Checker) *HealthRoutesManager {
	return &HealthRoutesManager{
		logger:  logger,
		checker: checker,
	}
}

func (hrm *HealthRoutesManager) RegisterRoutes(r chi.Router) {
	RegisterMetrics()

	r.Get("/health/server", hrm.GetServerHealth)
	r.Get("/health/database", hrm.GetDatabaseHealth)
	r.Get("/health/cache", hrm.GetCacheHealth)
	r.Get("/metrics", promhttp.Handler().ServeHTTP)
}

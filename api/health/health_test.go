package health

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"favour_crochet_server/config"
	"favour_crochet_server/services"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

type fakeChecker struct {
	dbErr    error
	cacheErr error
}

func (f fakeChecker) GetServerHealthStatus() services.ServerHealthStatus {
	return services.ServerHealthStatus{ServiceAlive: true, CurrentTime: time.Now()}
}

func (f fakeChecker) GetDatabaseHealthStatus(ctx context.Context) (services.DependencyHealthStatus, error) {
	return services.DependencyHealthStatus{Enabled: true, Connected: f.dbErr == nil}, f.dbErr
}

func (f fakeChecker) GetCacheHealthStatus(ctx context.Context) (services.DependencyHealthStatus, error) {
	return services.DependencyHealthStatus{Enabled: false}, f.cacheErr
}

func TestHealthRoutes(t *testing.T) {
	tests := []struct {
		name    string
		checker fakeChecker
		path    string
		want    int
	}{
		{name: "server", path: "/health/server", want: http.StatusOK},
		{name: "database up", path: "/health/database", want: http.StatusOK},
		{name: "database down", checker: fakeChecker{dbErr: errors.New("refused")}, path: "/health/database", want: http.StatusServiceUnavailable},
		{name: "cache disabled", path: "/health/cache", want: http.StatusOK},
		{name: "cache down", checker: fakeChecker{cacheErr: errors.New("timeout")}, path: "/health/cache", want: http.StatusServiceUnavailable},
		{name: "metrics", path: "/metrics", want: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := chi.NewRouter()
			NewHealthRoutesManager(config.NewLogger(false), tt.checker).RegisterRoutes(r)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

package health

import (
	"net/http"

	"favour_crochet_server/services"

	"github.com/MonkyMars/gecho"
)

func (hrm *HealthRoutesManager) GetServerHealth(w http.ResponseWriter, r *http.Request) {
	gecho.Success(w,
		gecho.WithData(hrm.checker.GetServerHealthStatus()),
		gecho.Send(),
	)
}

func (hrm *HealthRoutesManager) GetDatabaseHealth(w http.ResponseWriter, r *http.Request) {
	status, err := hrm.checker.GetDatabaseHealthStatus(r.Context())
	writeDependency(w, "database", status, err)
}

func (hrm *HealthRoutesManager) GetCacheHealth(w http.ResponseWriter, r *http.Request) {
	status, err := hrm.checker.GetCacheHealthStatus(r.Context())
	writeDependency(w, "cache", status, err)
}

// writeDependency answers 503 for a failed probe and records the outcome in DependencyUp.
func writeDependency(w http.ResponseWriter, name string, status services.DependencyHealthStatus, err error) {
	up := 0.0
	if status.Connected {
		up = 1
	}
	DependencyUp.WithLabelValues(name).Set(up)

	if err != nil {
		gecho.ServiceUnavailable(w,
			gecho.WithMessage("error.health."+name),
			gecho.WithData(status),
			gecho.Send(),
		)
		return
	}
	gecho.Success(w,
		gecho.WithData(status),
		gecho.Send(),
	)
}

package health

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "favour_crochet"

var (
	HttpDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency by route pattern",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
	}, []string{"method", "path", "status"})

	HttpRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests by route pattern",
	}, []string{"method", "path", "status"})

	OrdersCreated = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "orders",
		Name:      "created_total",
		Help:      "Orders placed",
	})

	CatalogWritesDenied = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "catalog",
		Name:      "writes_denied_total",
		Help:      "Catalog writes rejected for a missing or wrong API key",
	})

	DependencyUp = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "dependency_up",
		Help:      "Result of the last health probe per dependency (1 up, 0 down)",
	}, []string{"dependency"})

	registerOnce sync.Once
)

// RegisterMetrics adds the collectors to the default registry. Safe to call repeatedly.
func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(HttpDuration, HttpRequests, OrdersCreated, CatalogWritesDenied, DependencyUp)
	})
}

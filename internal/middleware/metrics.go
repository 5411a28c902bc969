package middleware

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RedisErrors counts Redis command failures by operation name.
var RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "gratitude_redis_errors_total",
	Help: "Total number of Redis errors by operation type",
}, []string{"operation"})

// EntriesCreated counts successfully persisted gratitude entries by mood.
var EntriesCreated = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "gratitude_entries_created_total",
	Help: "Total number of gratitude entries created, labeled by mood",
}, []string{"mood"})

// InitMetrics creates the Prometheus HTTP metrics collector for the service.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	return fiberprometheus.New(serviceName)
}

// MetricsMiddleware adapts the collector into a Fiber handler.
func MetricsMiddleware(p *fiberprometheus.FiberPrometheus) fiber.Handler {
	return p.Middleware
}

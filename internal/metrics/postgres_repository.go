package metrics

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-tracker/internal/tracker/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	postgresRepositoryRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "postgres_repository",
		Name:      "operations_total",
		Help:      "Count of tracker store operations.",
	}, []string{"operation", "network", "status"})
	postgresRepositoryRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "postgres_repository",
		Name:      "operation_duration_seconds",
		Help:      "Duration of tracker store operations.",
		Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
	}, []string{"operation", "network", "status"})
)

// PostgresRepository tracks metrics for the tracker store.
type PostgresRepository struct {
	network string
}

func NewPostgresRepository(network model.Network) *PostgresRepository {
	return &PostgresRepository{network: networkLabel(network)}
}

// Observe records duration and status of a store operation.
func (m PostgresRepository) Observe(operation string, err error, started time.Time) {
	s := status(err)
	postgresRepositoryRequestsTotal.WithLabelValues(operation, m.network, s).Inc()
	postgresRepositoryRequestDuration.WithLabelValues(operation, m.network, s).Observe(time.Since(started).Seconds())
}

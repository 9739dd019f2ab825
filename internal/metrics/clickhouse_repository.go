package metrics

import (
	"time"

	"github.com/goodnatureofminers/ledger7000-backend/internal/ledger/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	clickhouseRepositoryRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ledger7000",
		Subsystem: "clickhouse_repository",
		Name:      "operations_total",
		Help:      "Count of repository operations.",
	}, []string{"operation", "chain", "network", "status"})
	clickhouseRepositoryRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "ledger7000",
		Subsystem: "clickhouse_repository",
		Name:      "operation_duration_seconds",
		Help:      "Duration of repository operations.",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 15, 20, 30},
	}, []string{"operation", "chain", "network", "status"})
	clickhouseRepositoryRows = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ledger7000",
		Subsystem: "clickhouse_repository",
		Name:      "rows_total",
		Help:      "Count of rows written by repository operations.",
	}, []string{"operation"})
)

// ClickhouseRepository tracks metrics for ClickHouse repository operations.
type ClickhouseRepository struct{}

// NewClickhouseRepository creates a ClickhouseRepository metrics collector.
func NewClickhouseRepository() *ClickhouseRepository {
	return &ClickhouseRepository{}
}

// Observe records duration and status of a repository operation.
func (m ClickhouseRepository) Observe(operation string, chain model.Chain, network model.Network, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	c, n := labels(chain, network)

	clickhouseRepositoryRequestsTotal.WithLabelValues(operation, c, n, status).Inc()
	clickhouseRepositoryRequestDuration.WithLabelValues(operation, c, n, status).Observe(time.Since(started).Seconds())
}

// ObserveRows counts rows written by operation.
func (m ClickhouseRepository) ObserveRows(operation string, rows int) {
	clickhouseRepositoryRows.WithLabelValues(operation).Add(float64(rows))
}

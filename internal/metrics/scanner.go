package metrics

import (
	"time"

	"github.com/goodnatureofminers/ledger7000-backend/internal/ledger/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	scannerScanTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ledger7000",
		Subsystem: "scanner",
		Name:      "scan_total",
		Help:      "Count of address scans.",
	}, []string{"chain", "network", "status"})

	scannerScanDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "ledger7000",
		Subsystem: "scanner",
		Name:      "scan_duration_seconds",
		Help:      "Duration of a single address scan.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"chain", "network", "status"})

	scannerRecordsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ledger7000",
		Subsystem: "scanner",
		Name:      "records_total",
		Help:      "Count of raw records by classification outcome.",
	}, []string{"chain", "network", "outcome"})

	scannerOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ledger7000",
		Subsystem: "scanner",
		Name:      "operations_total",
		Help:      "Count of ledger operations produced.",
	}, []string{"chain", "network"})

	scannerCycleDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "ledger7000",
		Subsystem: "scanner",
		Name:      "cycle_duration_seconds",
		Help:      "Duration of a full reporting cycle over every target.",
		Buckets:   []float64{.1, .25, .5, 1, 2.5, 5, 10, 30, 60, 120, 300},
	})
)

// Scanner tracks metrics for ledger scans.
type Scanner struct{}

func NewScanner() *Scanner {
	return &Scanner{}
}

// ObserveScan records the outcome of scanning one address.
func (m Scanner) ObserveScan(chain model.Chain, network model.Network, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	c, n := labels(chain, network)
	scannerScanTotal.WithLabelValues(c, n, status).Inc()
	scannerScanDuration.WithLabelValues(c, n, status).Observe(time.Since(started).Seconds())
}

// ObserveRecords counts the records of one classified batch.
func (m Scanner) ObserveRecords(chain model.Chain, network model.Network, classified, skipped, malformed, operations int) {
	c, n := labels(chain, network)
	scannerRecordsTotal.WithLabelValues(c, n, "classified").Add(float64(classified))
	scannerRecordsTotal.WithLabelValues(c, n, "skipped").Add(float64(skipped))
	scannerRecordsTotal.WithLabelValues(c, n, "malformed").Add(float64(malformed))
	scannerOperationsTotal.WithLabelValues(c, n).Add(float64(operations))
}

func (m Scanner) ObserveCycle(started time.Time) {
	scannerCycleDuration.Observe(time.Since(started).Seconds())
}

func labels(chain model.Chain, network model.Network) (string, string) {
	if chain == "" {
		chain = "unknown"
	}
	if network == "" {
		network = "unknown"
	}
	return string(chain), string(network)
}

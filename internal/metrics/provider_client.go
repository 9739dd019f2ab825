package metrics

import (
	"time"

	"github.com/goodnatureofminers/ledger7000-backend/internal/ledger/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	providerRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ledger7000",
		Subsystem: "provider_client",
		Name:      "operations_total",
		Help:      "Count of data provider API operations.",
	}, []string{"operation", "chain", "network", "status"})
	providerRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "ledger7000",
		Subsystem: "provider_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of data provider API operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "chain", "network", "status"})
	providerPageItems = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "ledger7000",
		Subsystem: "provider_client",
		Name:      "page_items",
		Help:      "Number of items returned per listing page.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 10), // 1..512
	}, []string{"chain", "network", "category"})
)

// ProviderClient tracks metrics for calls to the blockchain data provider.
type ProviderClient struct {
	chain   model.Chain
	network model.Network
}

// NewProviderClient constructs a metrics collector for provider calls.
func NewProviderClient(chain model.Chain, network model.Network) *ProviderClient {
	if chain == "" {
		chain = "unknown"
	}
	if network == "" {
		network = "unknown"
	}
	return &ProviderClient{chain: chain, network: network}
}

// Observe records a single provider call outcome and duration.
func (m ProviderClient) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	providerRequestsTotal.WithLabelValues(operation, string(m.chain), string(m.network), status).Inc()
	providerRequestDuration.WithLabelValues(operation, string(m.chain), string(m.network), status).Observe(time.Since(started).Seconds())
}

// ObservePage records the size of one listing page.
func (m ProviderClient) ObservePage(category model.Category, items int) {
	providerPageItems.WithLabelValues(string(m.chain), string(m.network), string(category)).Observe(float64(items))
}

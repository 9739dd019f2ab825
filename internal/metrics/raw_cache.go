package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var rawCacheLookupsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "ledger7000",
	Subsystem: "raw_cache",
	Name:      "lookups_total",
	Help:      "Count of raw batch cache lookups.",
}, []string{"result"})

// RawCache tracks hit and miss rates of the raw batch cache.
type RawCache struct{}

func NewRawCache() *RawCache {
	return &RawCache{}
}

// ObserveLookup records a cache lookup. A failed lookup is counted as an error, not a miss.
func (m RawCache) ObserveLookup(hit bool, err error) {
	result := "miss"
	switch {
	case err != nil:
		result = "error"
	case hit:
		result = "hit"
	}
	rawCacheLookupsTotal.WithLabelValues(result).Inc()
}

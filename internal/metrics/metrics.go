package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	familyQueried = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "projsite_bookings",
			Name:      "family_queried_total",
			Help:      "Count of composite queries per booking family included.",
		},
		[]string{"family"},
	)

	queryDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "projsite_bookings",
			Name:      "composite_query_seconds",
			Help:      "Duration of the composite bookings aggregation.",
			Buckets:   prometheus.DefBuckets,
		},
	)

	exports = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "projsite_bookings",
			Name:      "exports_total",
			Help:      "Count of spreadsheet exports generated.",
		},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(familyQueried, queryDuration, exports)
	})
}

func IncFamilyQueried(family string) {
	familyQueried.WithLabelValues(family).Inc()
}

func ObserveQuery(d time.Duration) {
	queryDuration.Observe(d.Seconds())
}

func IncExport() {
	exports.Inc()
}

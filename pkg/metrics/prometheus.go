package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus metrics
type Metrics struct {
	SearchesTotal      *prometheus.CounterVec
	SearchDuration     prometheus.Histogram
	TasksAdded         prometheus.Counter
	DuplicatesRejected prometheus.Counter
	ErrorsCount        *prometheus.CounterVec
}

// NewMetrics creates new prometheus metrics on the default registry
func NewMetrics(namespace string) *Metrics {
	return NewMetricsWithRegistry(namespace, prometheus.DefaultRegisterer)
}

// NewMetricsWithRegistry creates new prometheus metrics on the given registry
func NewMetricsWithRegistry(namespace string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		SearchesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "flight_searches_total",
			Help:      "The total number of flight searches by result source",
		}, []string{"source"}),
		SearchDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "flight_search_duration_seconds",
			Help:      "Time taken to resolve a flight search",
			Buckets:   prometheus.DefBuckets,
		}),
		TasksAdded: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "flight_tasks_added_total",
			Help:      "The total number of flight tasks added to the ledger",
		}),
		DuplicatesRejected: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "duplicate_flights_rejected_total",
			Help:      "The total number of adds rejected by the one-flight-per-day rule",
		}),
		ErrorsCount: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "The total number of errors",
		}, []string{"operation"}),
	}
}

// Search result sources recorded on SearchesTotal
const (
	SourceAPI      = "api"
	SourceFallback = "fallback"
	SourceCache    = "cache"
	SourceMiss     = "miss"
)

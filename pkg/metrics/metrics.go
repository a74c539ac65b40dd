package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RateLimitAllowed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "docstore", Name: "rate_limit_allowed_total", Help: "Number of allowed requests by limiter type."},
		[]string{"limiter"},
	)
	RateLimitRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "docstore", Name: "rate_limit_rejected_total", Help: "Number of rejected requests by limiter type."},
		[]string{"limiter"},
	)
	StoreOperations = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "docstore", Name: "store_operations_total", Help: "Number of document store operations by kind."},
		[]string{"op"},
	)
	SearchResults = prometheus.NewHistogram(
		prometheus.HistogramOpts{Namespace: "docstore", Name: "store_search_results", Help: "Number of documents returned per search.", Buckets: prometheus.ExponentialBuckets(1, 4, 8)},
	)
	StoredDocuments = prometheus.NewGauge(
		prometheus.GaugeOpts{Namespace: "docstore", Name: "store_documents", Help: "Number of documents currently held."},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(RateLimitAllowed)
	reg.MustRegister(RateLimitRejected)
	reg.MustRegister(StoreOperations)
	reg.MustRegister(SearchResults)
	reg.MustRegister(StoredDocuments)
}

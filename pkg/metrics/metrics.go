package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of the similar-clients HTTP handler
	RecommendLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "recommender_similar_clients_latency_seconds",
		Help:    "Latency of similar-clients recommendation handler",
		Buckets: prometheus.DefBuckets,
	})

	// Total number of recommendation requests served
	RecommendRequests = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "recommender_similar_clients_requests_total",
		Help: "Total number of similar-clients recommendation requests",
	})

	// Requests rejected because a seed id was not found
	RecommendSeedNotFound = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "recommender_seed_not_found_total",
		Help: "Recommendation requests rejected due to an unknown seed id",
	})

	// Rows ingested per dataset table
	IngestRows = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "dataset_ingested_rows_total",
		Help: "Rows ingested per dataset table",
	}, []string{"table"})

	// Total dataset loads (dir reload or zip upload)
	IngestTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "dataset_ingest_total",
		Help: "Dataset load operations by source",
	}, []string{"source"})
)

func Init() {
	prometheus.MustRegister(
		RecommendLatency,
		RecommendRequests,
		RecommendSeedNotFound,
		IngestRows,
		IngestTotal,
	)
}

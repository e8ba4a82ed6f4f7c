package graph

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	traversalsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lexigraph_graph_traversals_total",
		Help: "Total traversal requests by operation and outcome",
	}, []string{"operation", "status"})

	traversalDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "lexigraph_graph_traversal_duration_seconds",
		Help:    "Traversal wall time by operation",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})

	pathsFound = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "lexigraph_graph_paths_found",
		Help:    "Number of paths returned per path search",
		Buckets: []float64{0, 1, 2, 5, 10, 25, 50},
	})

	subgraphNodes = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "lexigraph_graph_subgraph_nodes",
		Help:    "Number of nodes returned per neighborhood projection",
		Buckets: []float64{1, 5, 10, 25, 50, 100, 200},
	})
)

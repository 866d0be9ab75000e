package client

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	storeMutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gatherly_client",
			Name:      "store_mutations_total",
			Help:      "Store mutations that reached the remote store.",
		},
		[]string{"op"},
	)

	storeMutationFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gatherly_client",
			Name:      "store_mutation_failures_total",
			Help:      "Store mutations rejected by the agent.",
		},
		[]string{"op"},
	)

	storeCacheHitsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "gatherly_client",
			Name:      "store_cache_hits_total",
			Help:      "Detail loads served from the registry without a network call.",
		},
	)
)

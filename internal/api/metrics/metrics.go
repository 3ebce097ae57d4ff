// Package metrics defines and registers all custom Prometheus metrics for
// the farmbook API. It is the single source of truth for metric names,
// labels, and help strings. Metrics register with the default registry at
// import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "farmbook"

// EntitiesCreatedTotal counts successful creations per entity collection.
// Label:
//   - entity: "user", "farm", "booking", or "review"
var EntitiesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "entities_created_total",
		Help:      "Total number of entities created, by entity kind.",
	},
	[]string{"entity"},
)

// FarmCacheLookupsTotal counts farm cache lookups.
// Label:
//   - result: "hit" or "miss"
var FarmCacheLookupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "farm_cache_lookups_total",
		Help:      "Total farm cache lookups, by hit/miss result.",
	},
	[]string{"result"},
)

// StoreUnavailableTotal counts requests rejected because the backing store
// could not be reached.
var StoreUnavailableTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "store_unavailable_total",
		Help:      "Total requests that failed because MongoDB was unreachable.",
	},
)

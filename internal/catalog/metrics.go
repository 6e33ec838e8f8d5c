package catalog

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeHit   = "hit"
	outcomeMiss  = "miss"
	outcomeError = "error"
	outcomeEmpty = "empty"
)

var (
	catalogLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trippin_catalog_lookups_total",
			Help: "Catalog lookups per source and outcome",
		},
		[]string{"source", "outcome"},
	)

	catalogFallbacks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "trippin_catalog_fallbacks_total",
			Help: "Lookups answered with the generic fallback catalog",
		},
	)
)

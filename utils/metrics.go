package utils

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	MetricScreeningCount = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "vigie",
		Name:      "screenings_total",
		Help:      "Number of screening queries served, by outcome",
	}, []string{"outcome"})

	MetricScreeningLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "vigie",
		Name:      "screening_duration_seconds",
		Help:      "Time spent answering a single screening query",
		Buckets:   []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
	})

	MetricWatchlistEntities = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "vigie",
		Name:      "watchlist_entities",
		Help:      "Entities currently loaded in the matching index, by list",
	}, []string{"list_type"})

	MetricWatchlistRefreshCount = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "vigie",
		Name:      "watchlist_refreshes_total",
		Help:      "Watchlist refresh passes, by result",
	}, []string{"result"})
)

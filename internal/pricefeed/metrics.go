package pricefeed

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultFetched = "fetched"
	resultCached  = "cached"
	resultError   = "error"
)

var (
	fetches     *prometheus.CounterVec //nolint:gochecknoglobals
	fetchesOnce sync.Once              //nolint:gochecknoglobals
)

func countFetch(result string) {
	fetchesOnce.Do(func() {
		fetches = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "price_requests_total",
				Help: "Number of price lookups, differentiated by result.",
			},
			[]string{"result"},
		)
	})

	fetches.WithLabelValues(result).Inc()
}

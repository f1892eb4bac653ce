package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus instruments for the notary service.
type Metrics struct {
	StarsCreated prometheus.Counter
	StarsMinted  prometheus.Counter
	Transfers    prometheus.Counter
	Listings     prometheus.Counter
	Sales        prometheus.Counter
	CacheHits    prometheus.Counter
	CacheMisses  prometheus.Counter
}

// New creates and registers all notary metrics. Call once per process.
func New() *Metrics {
	return &Metrics{
		StarsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "starnotary_stars_created_total",
			Help: "Total number of stars registered with coordinate data",
		}),
		StarsMinted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "starnotary_stars_minted_total",
			Help: "Total number of bare tokens minted",
		}),
		Transfers: promauto.NewCounter(prometheus.CounterOpts{
			Name: "starnotary_transfers_total",
			Help: "Total number of ownership transfers, including sales",
		}),
		Listings: promauto.NewCounter(prometheus.CounterOpts{
			Name: "starnotary_listings_total",
			Help: "Total number of sale listings recorded",
		}),
		Sales: promauto.NewCounter(prometheus.CounterOpts{
			Name: "starnotary_sales_total",
			Help: "Total number of completed purchases",
		}),
		CacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "starnotary_starinfo_cache_hits_total",
			Help: "Star info lookups served from the read cache",
		}),
		CacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "starnotary_starinfo_cache_misses_total",
			Help: "Star info lookups that fell through to the store",
		}),
	}
}

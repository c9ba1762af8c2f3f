package serve

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// metrics holds the collectors of one server, registered on its own registry.
type metrics struct {
	registry *prometheus.Registry

	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	relatedItems    *prometheus.HistogramVec
	searchesFailed  *prometheus.CounterVec
}

func newMetrics() *metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &metrics{
		registry: reg,
		requestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hass_search_http_requests_total",
				Help: "Total number of HTTP requests processed",
			},
			[]string{"method", "path", "status"},
		),
		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "hass_search_http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
			},
			[]string{"method", "path"},
		),
		relatedItems: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "hass_search_related_items",
				Help:    "Number of related items returned per search",
				Buckets: prometheus.ExponentialBuckets(1, 2, 10),
			},
			[]string{"item_type"},
		),
		searchesFailed: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hass_search_failed_requests_total",
				Help: "Search requests rejected, by error code",
			},
			[]string{"code"},
		),
	}
}

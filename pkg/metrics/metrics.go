// Package metrics provides Prometheus metrics for the HTTP API.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gardenerp_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gardenerp_http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	OrderCalculationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gardenerp_order_calculations_total",
			Help: "Total number of production order calculations",
		},
		[]string{"group_by", "status"},
	)
)

package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dashboard_http_requests_total",
		Help: "HTTP requests served, by route pattern, method and status code.",
	}, []string{"route", "method", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "dashboard_http_request_duration_seconds",
		Help:    "Time to serve an HTTP request, by route pattern.",
		Buckets: prometheus.ExponentialBuckets(0.0005, 2, 12), // 0.5ms to ~1s
	}, []string{"route"})

	filterMatchedRows = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "dashboard_filter_matched_rows",
		Help:    "Listings kept by a filter pass.",
		Buckets: prometheus.ExponentialBuckets(1, 4, 10),
	})

	estimatesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dashboard_estimates_total",
		Help: "Price estimates, by outcome (data, no_data, invalid).",
	}, []string{"outcome"})
)

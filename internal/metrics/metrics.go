// MovieGraph - Graph-Backed Movie Recommendation Service
// Copyright 2026 Rohan S. (rohansi4)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rohansi4/moviegraph

// Package metrics exposes the service's Prometheus collectors. All collectors
// are registered on the default registry and served at /metrics.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal counts handled HTTP requests by method, route pattern
	// and status code.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moviegraph_http_requests_total",
			Help: "Total HTTP requests handled, by method, route and status.",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPRequestDuration observes request latency by route pattern.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "moviegraph_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds, by method and route.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// CypherQueryDuration observes graph query latency per operation (the
	// recommendation strategy or catalog operation name).
	CypherQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "moviegraph_cypher_query_duration_seconds",
			Help:    "Cypher query latency in seconds, by operation.",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"operation"},
	)

	// MockFallbacksTotal counts responses served from mock data because the
	// graph database was unavailable, by capability.
	MockFallbacksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moviegraph_mock_fallbacks_total",
			Help: "Responses served from mock data, by capability.",
		},
		[]string{"capability"},
	)
)

// ObserveQuery records one graph query execution.
func ObserveQuery(operation string, elapsed time.Duration) {
	CypherQueryDuration.WithLabelValues(operation).Observe(elapsed.Seconds())
}

// RecordFallback counts one mock-data fallback for the named capability.
func RecordFallback(capability string) {
	MockFallbacksTotal.WithLabelValues(capability).Inc()
}

// RecordHTTPRequest records one completed HTTP request.
func RecordHTTPRequest(method, route string, status int, elapsed time.Duration) {
	code := strconv.Itoa(status)
	HTTPRequestsTotal.WithLabelValues(method, route, code).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

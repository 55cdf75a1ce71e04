// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "carewave"

var HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "http",
	Name:      "requests_total",
	Help:      "HTTP requests by method, route and status.",
}, []string{"method", "route", "status"})

var HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: namespace,
	Subsystem: "http",
	Name:      "request_duration_seconds",
	Help:      "HTTP request latency.",
	Buckets:   prometheus.DefBuckets,
}, []string{"method", "route"})

var EntriesPosted = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "ledger",
	Name:      "entries_posted_total",
	Help:      "Journal entries committed.",
})

var EntriesRejected = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "ledger",
	Name:      "entries_rejected_total",
	Help:      "Journal entries rejected by validation, by reason.",
}, []string{"reason"})

var StatementsComputed = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "statements",
	Name:      "computed_total",
	Help:      "Statements derived from posted lines, by kind.",
}, []string{"kind"})

var LinesScanned = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "statements",
	Name:      "lines_scanned_total",
	Help:      "Journal lines read while deriving statements.",
})

// Package metrics declares the prometheus collectors shared by the API server
// and the mail workers. Collectors register on the default registry.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "holerite"

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

//nolint: gochecknoglobals
var (
	// HTTPRequests counts served HTTP requests by method and status code.
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Number of HTTP requests served.",
	}, []string{"method", "code"})
	// HTTPDuration observes HTTP request latency by method.
	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency.",
		Buckets:   DefaultBuckets,
	}, []string{"method"})

	// NotificationsQueued counts notifications created by process requests per unidade.
	NotificationsQueued = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "payslip",
		Name:      "notifications_queued_total",
		Help:      "Number of payslip notifications queued for delivery.",
	}, []string{"unidade"})
	// Deliveries counts delivery attempts by outcome (sent, failed, retry, rate_limited).
	Deliveries = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "mail",
		Name:      "deliveries_total",
		Help:      "Number of payslip e-mail delivery attempts by outcome.",
	}, []string{"outcome"})
	// DeliveryDuration observes how long the mail provider takes to accept an e-mail.
	DeliveryDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "mail",
		Name:      "delivery_duration_seconds",
		Help:      "Latency of payslip e-mail deliveries.",
		Buckets:   DefaultBuckets,
	})
)

// Delivery outcomes used as the Deliveries label.
const (
	OutcomeSent        = "sent"
	OutcomeFailed      = "failed"
	OutcomeRetry       = "retry"
	OutcomeRateLimited = "rate_limited"
	OutcomeSkipped     = "skipped"
)

// Package metrics holds the Prometheus collectors of the relay.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Notification outcomes
const (
	OutcomeForwarded     = "forwarded"
	OutcomeDropped       = "dropped"
	OutcomeEmpty         = "empty"
	OutcomeMalformed     = "malformed"
	OutcomePublishFailed = "publish_failed"
)

var (
	NotificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "siri_relay_notifications_total",
			Help: "Total number of SIRI notifications handled, by outcome",
		},
		[]string{"outcome"},
	)

	NotificationBytesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "siri_relay_notification_bytes_total",
			Help: "Total bytes of SIRI XML received",
		},
	)

	PublishDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "siri_relay_publish_duration_seconds",
			Help:    "Duration of sink publish calls in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	SubscriptionRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "siri_relay_subscription_requests_total",
			Help: "Total number of subscription requests sent, by HTTP status",
		},
		[]string{"status"},
	)
)

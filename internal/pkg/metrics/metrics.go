// Package metrics holds the Prometheus collectors of the service. They are
// registered on the default registry and served by the HTTP adapter at /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OrdersPlacedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "swiftdrop_orders_placed_total",
		Help: "Total number of orders successfully placed.",
	})

	UsersRegisteredTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "swiftdrop_users_registered_total",
		Help: "Total number of registered accounts.",
	})

	OperationErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "swiftdrop_operation_errors_total",
		Help: "Total number of errors encountered during specific operations.",
	},
		[]string{"operation"},
	)

	EventPublishErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "swiftdrop_event_publish_errors_total",
		Help: "Total number of events that could not be published.",
	},
		[]string{"event"},
	)

	AggregatesCommittedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "swiftdrop_aggregates_committed_total",
		Help: "Total number of aggregates written by committed transactions.",
	},
		[]string{"aggregate"},
	)

	SessionsPurgedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "swiftdrop_sessions_purged_total",
		Help: "Total number of expired or revoked sessions removed.",
	})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "swiftdrop_http_request_duration_seconds",
		Help:    "Duration of HTTP requests by route and status.",
		Buckets: prometheus.DefBuckets,
	},
		[]string{"method", "route", "status"},
	)
)

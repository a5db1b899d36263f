package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	eventsConsumed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "food_dispatch",
			Subsystem: "events_consumer",
			Name:      "events_consumed_total",
			Help:      "Total number of order events fanned out to subscribers",
		},
		[]string{"type"},
	)

	eventsFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "food_dispatch",
			Subsystem: "events_consumer",
			Name:      "events_failed_total",
			Help:      "Total number of events that could not be decoded",
		},
	)

	eventsDLQ = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "food_dispatch",
			Subsystem: "events_consumer",
			Name:      "events_dlq_total",
			Help:      "Total number of events written to DLQ",
		},
	)

	commitErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "food_dispatch",
			Subsystem: "events_consumer",
			Name:      "commit_errors_total",
			Help:      "Total number of Kafka commit errors",
		},
	)

	eventProcessingDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "food_dispatch",
			Subsystem: "events_consumer",
			Name:      "event_processing_duration_seconds",
			Help:      "Histogram of event fan-out durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)

	eventsInProgress = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "food_dispatch",
			Subsystem: "events_consumer",
			Name:      "events_in_progress",
			Help:      "Number of events currently being processed",
		},
	)

	hintsDelivered = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "food_dispatch",
			Subsystem: "ws",
			Name:      "hints_delivered_total",
			Help:      "Total number of hints queued to websocket clients",
		},
	)
)

var (
	claimsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "food_dispatch",
			Subsystem: "dispatch",
			Name:      "claims_total",
			Help:      "Claim attempts by result",
		},
		[]string{"result"},
	)

	deliveriesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "food_dispatch",
			Subsystem: "dispatch",
			Name:      "deliveries_total",
			Help:      "Total number of completed deliveries",
		},
	)

	ordersCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "food_dispatch",
			Subsystem: "orders",
			Name:      "created_total",
			Help:      "Orders accepted at checkout, by whether they were buffered locally",
		},
		[]string{"buffered"},
	)

	domainErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "food_dispatch",
			Subsystem: "http",
			Name:      "domain_errors_total",
			Help:      "Domain errors returned to clients by code",
		},
		[]string{"code"},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		eventsConsumed,
		eventsFailed,
		eventsDLQ,
		commitErrors,
		eventProcessingDuration,
		eventsInProgress,
		hintsDelivered,

		claimsTotal,
		deliveriesTotal,
		ordersCreated,
		domainErrors,
	)
}

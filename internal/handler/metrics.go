package handler

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	paymentsProcessed = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "rental_service",
			Subsystem: "kafka_consumer",
			Name:      "payments_processed_total",
			Help:      "Total number of successfully processed payment confirmations",
		},
	)

	paymentsFailed = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "rental_service",
			Subsystem: "kafka_consumer",
			Name:      "payments_failed_total",
			Help:      "Total number of failed payment confirmation attempts",
		},
	)

	paymentsDLQ = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "rental_service",
			Subsystem: "kafka_consumer",
			Name:      "payments_dlq_total",
			Help:      "Total number of payment confirmations written to DLQ",
		},
	)

	commitErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "rental_service",
			Subsystem: "kafka_consumer",
			Name:      "commit_errors_total",
			Help:      "Total number of Kafka commit errors",
		},
	)

	paymentProcessingDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "rental_service",
			Subsystem: "kafka_consumer",
			Name:      "payment_processing_duration_seconds",
			Help:      "Histogram of payment confirmation processing durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)
)

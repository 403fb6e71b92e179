package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	transitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "rental_service",
		Subsystem: "orders",
		Name:      "transitions_total",
		Help:      "Total number of applied order status transitions.",
	}, []string{"to_status"})

	notificationsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "rental_service",
		Subsystem: "notifications",
		Name:      "created_total",
		Help:      "Total number of notifications persisted.",
	}, []string{"audience"})

	notificationsDeduped = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "rental_service",
		Subsystem: "notifications",
		Name:      "deduped_total",
		Help:      "Total number of notification writes suppressed by the dedupe key.",
	})
)

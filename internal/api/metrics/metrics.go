// Package metrics defines and registers all custom Prometheus metrics for the
// WebEco storefront API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry at package load via
// promauto; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "webeco"

// ── Session metrics ───────────────────────────────────────────────────────────

// LoginsTotal counts login attempts by outcome ("ok", "denied", "error").
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by outcome.",
	},
	[]string{"outcome"},
)

// SessionsRejectedTotal counts requests turned away by the session gate.
// All rejection causes collapse into one number on purpose — the split
// is not observable externally and the metric must not leak it either.
var SessionsRejectedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_rejected_total",
		Help:      "Total number of requests rejected during session validation.",
	},
)

// ── Order metrics ─────────────────────────────────────────────────────────────

// OrdersCreatedTotal counts successful checkouts.
var OrdersCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_created_total",
		Help:      "Total number of orders created through checkout.",
	},
)

// OrderEventsProcessedTotal counts order status events that completed
// processing successfully, labelled by the applied status.
var OrderEventsProcessedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "order_events_processed_total",
		Help:      "Total number of order status events successfully processed.",
	},
	[]string{"status"},
)

// OrderEventsErrorsTotal counts order status events that failed processing.
// Label:
//   - reason: short description of the failure (e.g. "invalid_transition", "order_not_found", "update_failed")
var OrderEventsErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "order_events_errors_total",
		Help:      "Total number of order status events that failed processing.",
	},
	[]string{"reason"},
)

// ── Storefront metrics ────────────────────────────────────────────────────────

// ReviewsSubmittedTotal counts accepted star ratings, labelled by stars.
var ReviewsSubmittedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reviews_submitted_total",
		Help:      "Total number of accepted product reviews, by star value.",
	},
	[]string{"stars"},
)

// CartOperationsTotal counts cart mutations ("add", "set", "remove").
var CartOperationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cart_operations_total",
		Help:      "Total number of cart mutations, by operation.",
	},
	[]string{"op"},
)

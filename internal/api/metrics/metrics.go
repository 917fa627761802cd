// Package metrics defines all custom Prometheus metrics for the PitchBridge
// API. It is the single source of truth for metric names, labels, and help
// strings. Metrics register themselves with the default registry via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "pitchbridge"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// UsersRegisteredTotal counts successful registrations by role.
var UsersRegisteredTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
		Help:      "Total number of accounts created, by role.",
	},
	[]string{"role"},
)

// AuthFailuresTotal counts rejected requests at the authentication guard.
// Label:
//   - reason: "missing_header", "bad_scheme", "invalid_token", "unknown_user"
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of requests rejected by the authentication guard.",
	},
	[]string{"reason"},
)

// ── Pitch metrics ─────────────────────────────────────────────────────────────

// PitchesCreatedTotal counts pitches sent to investors.
var PitchesCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "pitches_created_total",
		Help:      "Total number of pitches created.",
	},
)

// PitchTransitionsTotal counts status transitions applied to pitches.
// Label:
//   - status: the new status ("viewed", "interested", "rejected")
var PitchTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "pitch_transitions_total",
		Help:      "Total number of pitch status transitions, by new status.",
	},
	[]string{"status"},
)

// ── Notification metrics ──────────────────────────────────────────────────────

// NotificationsDeliveredTotal counts notifications persisted by the dispatcher.
// Label:
//   - kind: notification kind (e.g. "pitch_received", "message")
var NotificationsDeliveredTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_delivered_total",
		Help:      "Total number of notifications persisted, by kind.",
	},
	[]string{"kind"},
)

// NotificationsErrorsTotal counts notifications that failed to persist.
var NotificationsErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_errors_total",
		Help:      "Total number of notifications that failed to persist, by kind.",
	},
	[]string{"kind"},
)

// NotificationsQueueDepth tracks pending notifications per dispatcher worker.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var NotificationsQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "notifications_queue_depth",
		Help:      "Current number of notifications pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

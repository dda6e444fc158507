// Package metrics defines and registers the custom Prometheus metrics
// for the salon API. It is the single source of truth for metric names,
// labels, and help strings; registration happens at import time via
// promauto against the default registry.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "salon"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// AppointmentsCreatedTotal counts appointments successfully booked.
var AppointmentsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "appointments_created_total",
		Help:      "Total number of appointments created.",
	},
)

// AppointmentTransitionsTotal counts appointment status transitions.
// Label:
//   - status: the new status ("COMPLETED" or "CANCELLED")
var AppointmentTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "appointment_transitions_total",
		Help:      "Total number of appointment status transitions, by new status.",
	},
	[]string{"status"},
)

// SnapshotsTotal counts backup snapshot operations.
// Labels:
//   - operation: "export" or "import"
//   - result: "success" or "failure"
var SnapshotsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "snapshots_total",
		Help:      "Total number of backup snapshot operations, by operation and result.",
	},
	[]string{"operation", "result"},
)

// Package metrics defines and registers the custom Prometheus metrics for
// the school-records API. It is the single source of truth for metric names,
// labels, and help strings.
//
// HTTP-level request metrics come from the echoprometheus middleware; the
// metrics here cover the authentication subsystem specifically.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "school"

// LoginAttemptsTotal counts login attempts by outcome.
// Label:
//   - result: "success" or "failure" (failures are never broken down further,
//     matching the API's single generic failure message)
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts successful registrations by assigned role.
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts created, labelled by role.",
	},
	[]string{"role"},
)

// PasswordChangesTotal counts password-change requests by outcome.
// Label:
//   - result: "success" or "failure"
var PasswordChangesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "password_changes_total",
		Help:      "Total number of password change requests, labelled by result.",
	},
	[]string{"result"},
)

// RateLimitedTotal counts requests rejected by the login rate limiter.
var RateLimitedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rate_limited_total",
		Help:      "Total number of requests rejected by the login rate limiter.",
	},
)

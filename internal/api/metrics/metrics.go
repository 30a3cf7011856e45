// Package metrics defines and registers all custom Prometheus metrics for
// the EvidenceTrack API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry at package init;
// the router exposes them on /metrics alongside the echoprometheus request
// metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "evidencetrack"

// RequestErrorsTotal counts classified request failures.
// Label:
//   - error_code: the machine code returned to the caller
//     (e.g. "VALIDATION_ERROR", "INVALID_TOKEN", "UNEXPECTED_ERROR")
var RequestErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "request_errors_total",
		Help:      "Total number of requests that ended in an error envelope, labelled by error code.",
	},
	[]string{"error_code"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "invalid_credentials", or "throttled"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// CaseFilesCreatedTotal counts case files registered through the API.
var CaseFilesCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "case_files_created_total",
		Help:      "Total number of case files created.",
	},
)

// EvidenceItemsCreatedTotal counts evidence items registered through the API.
var EvidenceItemsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "evidence_items_created_total",
		Help:      "Total number of evidence items created.",
	},
)

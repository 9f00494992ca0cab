// Package metrics defines and registers all custom Prometheus metrics for the
// client registry API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register themselves with the default Prometheus registry at package
// load via promauto; the /metrics endpoint exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "client_registry"

// ClientsCreatedTotal counts newly created clients.
// Label:
//   - document_type: the client's document type (e.g. "DNI")
var ClientsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "clients_created_total",
		Help:      "Total number of clients created, by document type.",
	},
	[]string{"document_type"},
)

// ClientMutationsTotal counts successful client mutations.
// Label:
//   - operation: "update", "partial_update", "phone_update", or "delete"
var ClientMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "client_mutations_total",
		Help:      "Total number of successful client mutations, by operation.",
	},
	[]string{"operation"},
)

// ValidationErrorsTotal counts requests rejected by enum or catalog validation.
// Label:
//   - reason: "invalid_enum" or "catalog_empty"
var ValidationErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "validation_errors_total",
		Help:      "Total number of requests rejected by referential validation.",
	},
	[]string{"reason"},
)

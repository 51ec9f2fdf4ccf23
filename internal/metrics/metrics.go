// Package metrics defines all custom Prometheus metrics for the user and
// order APIs. It is the single source of truth for metric names, labels, and
// help strings; registration happens at import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "commerce"

// PeerRequestsTotal counts synchronous calls to the peer service.
// Labels:
//   - peer: "users_api" or "orders_api"
//   - outcome: "ok", "not_found", "invalid_reference", "upstream_error",
//     "transport_error"
var PeerRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "peer_requests_total",
		Help:      "Total number of synchronous peer-service calls, labelled by outcome.",
	},
	[]string{"peer", "outcome"},
)

// DuplicateRejectionsTotal counts user registrations rejected because the
// decrypt-and-scan check found an existing CPF or e-mail.
var DuplicateRejectionsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "duplicate_rejections_total",
		Help:      "Total number of user registrations rejected as CPF/e-mail duplicates.",
	},
)

// CodecFailuresTotal counts confidentiality codec failures.
// Label:
//   - op: "encrypt" or "decrypt"
var CodecFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "codec_failures_total",
		Help:      "Total number of field encryption/decryption failures.",
	},
	[]string{"op"},
)

// CascadeOutcomesTotal counts user-delete cascades by result.
// Label:
//   - result: "orders_deleted", "no_orders", "failed"
var CascadeOutcomesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cascade_outcomes_total",
		Help:      "Total number of cascading order deletions, labelled by result.",
	},
	[]string{"result"},
)

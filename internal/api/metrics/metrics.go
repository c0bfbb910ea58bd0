// Package metrics defines all custom Prometheus metrics for the storefront
// API. It is the single source of truth for metric names, labels, and help
// strings. Metrics register themselves with the default registry at init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "storefront"

// ── Store metrics ─────────────────────────────────────────────────────────────

// StoreResolutionsTotal counts record-store backend resolutions. The store
// resolves once per process, so a healthy instance reports exactly one sample.
// Label:
//   - backend: "mongo" or "memory"
var StoreResolutionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "store_resolutions_total",
		Help:      "Total number of record-store backend resolutions, by backend.",
	},
	[]string{"backend"},
)

// ── Auth metrics ──────────────────────────────────────────────────────────────

// AuthAttemptsTotal counts registration and login attempts.
// Labels:
//   - operation: "register" or "login"
//   - result: "success", "rejected" (bad input, duplicate, wrong
//     credentials), "throttled" or "error" (backend failure)
var AuthAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Total number of auth attempts, by operation and result.",
	},
	[]string{"operation", "result"},
)

// ── Catalog metrics ───────────────────────────────────────────────────────────

// CatalogWritesTotal counts successful catalog mutations.
// Label:
//   - operation: "create", "update" or "delete"
var CatalogWritesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "catalog_writes_total",
		Help:      "Total number of successful catalog writes, by operation.",
	},
	[]string{"operation"},
)

// Package metrics defines and registers all custom Prometheus metrics for
// the CRM backend. It is the single source of truth for metric names,
// labels, and help strings. Metrics register with the default registry at
// package init via promauto; the /metrics route exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "crm"

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

// RecordsCreatedTotal counts records persisted by the write queue.
// Label:
//   - resource: "clients" or "transactions"
var RecordsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "records_created_total",
		Help:      "Total number of records successfully persisted, by resource.",
	},
	[]string{"resource"},
)

// WriteFailuresTotal counts deferred writes that failed after the response
// was already sent.
// Label:
//   - resource: "clients" or "transactions"
var WriteFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "write_failures_total",
		Help:      "Total number of fire-and-forget writes that failed, by resource.",
	},
	[]string{"resource"},
)

// WriteQueueDepth tracks the number of ops waiting in each write worker
// channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var WriteQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "write_queue_depth",
		Help:      "Current number of ops pending in each write worker channel.",
	},
	[]string{"worker_id"},
)

// DashboardQueryDuration measures how long a full dashboard computation
// takes, all four aggregations included.
var DashboardQueryDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "dashboard_query_duration_seconds",
		Help:      "Duration of the dashboard aggregation round-trip.",
		Buckets:   prometheus.DefBuckets,
	},
)

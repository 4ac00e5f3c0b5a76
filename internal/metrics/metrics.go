// Package metrics exposes Prometheus instruments for the journal pipeline:
// published and processed entries, apply and lock wait latencies, and push
// notifications.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "dbjournal"

// Results recorded in EntriesProcessed.
const (
	ResultApplied = "applied"
	ResultRetried = "retried"
	ResultFatal   = "fatal"
)

// Results recorded in Notifications.
const (
	NotificationSent    = "sent"
	NotificationSkipped = "skipped"
	NotificationFailed  = "failed"
)

// Metrics owns a private registry so several instances can coexist in tests.
type Metrics struct {
	registry *prometheus.Registry

	EntriesPublished prometheus.Counter
	EntriesProcessed *prometheus.CounterVec
	ApplyDuration    prometheus.Histogram
	LockWait         prometheus.Histogram
	Notifications    *prometheus.CounterVec
}

func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		EntriesPublished: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "entries_published_total",
			Help:      "Journal entries handed to the queue.",
		}),
		EntriesProcessed: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "entries_processed_total",
			Help:      "Journal entries handled by workers, by result.",
		}, []string{"result"}),
		ApplyDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "apply_duration_seconds",
			Help:      "Time spent loading, applying and saving one journal entry.",
			Buckets:   prometheus.DefBuckets,
		}),
		LockWait: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "lock_wait_seconds",
			Help:      "Time spent waiting for a snapshot lock.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
		}),
		Notifications: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_total",
			Help:      "Drain notifications, by result.",
		}, []string{"result"}),
	}
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveSince records the time elapsed since start on h.
func ObserveSince(h prometheus.Observer, start time.Time) {
	h.Observe(time.Since(start).Seconds())
}

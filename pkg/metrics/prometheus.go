package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus metrics
type Metrics struct {
	Registrations    prometheus.Counter
	Logins           prometheus.Counter
	BookingsCreated  prometheus.Counter
	BookingsCanceled prometheus.Counter
	ShardOps         *prometheus.CounterVec
	ErrorsCount      *prometheus.CounterVec
	RequestDuration  prometheus.Histogram
}

// NewMetrics creates new prometheus metrics
func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		Registrations: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "registrations_total",
			Help:      "The total number of successful registrations",
		}),
		Logins: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "logins_total",
			Help:      "The total number of successful logins",
		}),
		BookingsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_created_total",
			Help:      "The total number of bookings created",
		}),
		BookingsCanceled: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_canceled_total",
			Help:      "The total number of bookings canceled",
		}),
		ShardOps: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "shard_operations_total",
			Help:      "Logical operations executed per shard",
		}, []string{"shard", "operation"}),
		ErrorsCount: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "The total number of errors",
		}, []string{"operation"}),
		RequestDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "request_duration_seconds",
			Help:      "Time taken to serve HTTP requests",
			Buckets:   prometheus.DefBuckets,
		}),
	}
}

// The nil-safe helpers below let callers skip wiring metrics (tests
// pass a nil *Metrics).

// ObserveShardOp counts one logical operation against a shard.
func (m *Metrics) ObserveShardOp(shard, operation string) {
	if m == nil {
		return
	}
	m.ShardOps.WithLabelValues(shard, operation).Inc()
}

// ObserveError counts one failed operation.
func (m *Metrics) ObserveError(operation string) {
	if m == nil {
		return
	}
	m.ErrorsCount.WithLabelValues(operation).Inc()
}

// IncRegistration counts one successful registration.
func (m *Metrics) IncRegistration() {
	if m == nil {
		return
	}
	m.Registrations.Inc()
}

// IncLogin counts one successful login.
func (m *Metrics) IncLogin() {
	if m == nil {
		return
	}
	m.Logins.Inc()
}

// IncBookingCreated counts one booking creation.
func (m *Metrics) IncBookingCreated() {
	if m == nil {
		return
	}
	m.BookingsCreated.Inc()
}

// IncBookingCanceled counts one booking cancellation.
func (m *Metrics) IncBookingCanceled() {
	if m == nil {
		return
	}
	m.BookingsCanceled.Inc()
}

// Package metrics holds the Prometheus collectors of the service.
package metrics

import (
	"errors"

	"fulfillment/internal/pkg/errs"

	"github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	AssignmentsTotal    *prometheus.CounterVec
	OverdueDeliveries   prometheus.Gauge
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duration of HTTP requests.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
		AssignmentsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "delivery_assignments_total",
				Help: "Delivery assignment attempts by outcome",
			},
			[]string{"outcome"},
		),
		OverdueDeliveries: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "deliveries_overdue",
			Help: "Active deliveries past their estimated delivery time at the last check",
		}),
	}
	reg.MustRegister(m.HTTPRequestsTotal, m.HTTPRequestDuration, m.AssignmentsTotal, m.OverdueDeliveries)
	return m
}

// ObserveAssignment counts one assignment attempt under the outcome derived
// from its error.
func (m *Metrics) ObserveAssignment(err error) {
	m.AssignmentsTotal.WithLabelValues(AssignmentOutcome(err)).Inc()
}

func AssignmentOutcome(err error) string {
	switch {
	case err == nil:
		return "assigned"
	case errors.Is(err, errs.ErrCapacityExceeded):
		return "capacity_exceeded"
	case errors.Is(err, errs.ErrConflict):
		return "conflict"
	case errors.Is(err, errs.ErrInvalidState):
		return "invalid_state"
	case errors.Is(err, errs.ErrObjectNotFound):
		return "not_found"
	case errs.IsValidation(err):
		return "invalid"
	default:
		return "error"
	}
}

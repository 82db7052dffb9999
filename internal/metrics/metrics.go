package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRegistry holds every Prometheus metric the service records.
type MetricsRegistry struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	BookingsCreatedTotal   prometheus.Counter
	BookingsCancelledTotal prometheus.Counter
	PaymentsLoggedTotal    prometheus.Counter
}

// NewMetricsRegistry registers all metrics against reg. Production passes
// prometheus.DefaultRegisterer; tests pass a fresh registry to avoid duplicate
// registration panics.
func NewMetricsRegistry(reg prometheus.Registerer) *MetricsRegistry {
	factory := promauto.With(reg)
	return &MetricsRegistry{
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "flightbook_http_requests_total",
				Help: "Total HTTP requests by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "flightbook_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
			},
			[]string{"endpoint", "method"},
		),
		BookingsCreatedTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "flightbook_bookings_created_total",
			Help: "Bookings successfully created",
		}),
		BookingsCancelledTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "flightbook_bookings_cancelled_total",
			Help: "Bookings cancelled, rebook cancellations included",
		}),
		PaymentsLoggedTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "flightbook_payments_logged_total",
			Help: "Entries appended to the payment log",
		}),
	}
}

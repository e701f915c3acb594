package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "manuparts",
			Name:      "http_requests_total",
			Help:      "HTTP requests by endpoint and status.",
		},
		[]string{"endpoint", "status"},
	)

	duplicateBookings = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "manuparts",
			Name:      "duplicate_bookings_total",
			Help:      "Booking submissions rejected by the natural-key index.",
		},
	)

	paymentIntents = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "manuparts",
			Name:      "payment_intents_total",
			Help:      "Payment intents created at the gateway.",
		},
	)
)

// Register registers Prometheus metrics. Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(httpRequests, duplicateBookings, paymentIntents)
	})
}

// IncHTTP increments the request counter for an endpoint/status pair.
func IncHTTP(endpoint, status string) {
	httpRequests.WithLabelValues(endpoint, status).Inc()
}

func IncDuplicateBooking() {
	duplicateBookings.Inc()
}

func IncPaymentIntent() {
	paymentIntents.Inc()
}

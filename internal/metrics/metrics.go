package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the service collectors exposed on /metrics.
	Registry = prometheus.NewRegistry()

	httpInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "stayhub",
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "stayhub",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "stayhub",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10),
		},
		[]string{"method", "route"},
	)

	bookingAttempts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "stayhub",
			Subsystem: "bookings",
			Name:      "create_total",
			Help:      "Booking creation attempts by outcome.",
		},
		[]string{"outcome"},
	)

	statusTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "stayhub",
			Subsystem: "bookings",
			Name:      "transitions_total",
			Help:      "Booking status transitions by target status and outcome.",
		},
		[]string{"to", "outcome"},
	)

	staleCancelled = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "stayhub",
			Subsystem: "bookings",
			Name:      "stale_cancelled_total",
			Help:      "Pending bookings cancelled after their check-in date passed.",
		},
	)
)

func init() {
	Registry.MustRegister(
		httpInFlight,
		httpRequests,
		httpDuration,
		bookingAttempts,
		statusTransitions,
		staleCancelled,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

// Handler returns an HTTP handler exposing the registered metrics.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

func RequestStarted() {
	httpInFlight.Inc()
}

// RequestFinished records a completed request. route is the matched route template, not the raw path.
func RequestFinished(method, route string, status int, d time.Duration) {
	httpInFlight.Dec()
	if route == "" {
		route = "unmatched"
	}
	httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

func RecordBookingAttempt(outcome string) {
	bookingAttempts.WithLabelValues(outcome).Inc()
}

func RecordTransition(to, outcome string) {
	statusTransitions.WithLabelValues(to, outcome).Inc()
}

func RecordStaleCancelled(n int) {
	staleCancelled.Add(float64(n))
}

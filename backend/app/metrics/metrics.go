package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "recipevault",
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "recipevault",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	AuthEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "recipevault",
			Name:      "auth_events_total",
			Help:      "Signup, login and logout attempts by outcome",
		},
		[]string{"event", "outcome"},
	)

	RecipesCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "recipevault",
			Name:      "recipes_created_total",
			Help:      "Number of recipes created",
		},
	)

	RateLimited = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "recipevault",
			Name:      "rate_limited_total",
			Help:      "Requests rejected by the rate limiter",
		},
		[]string{"route"},
	)
)

func init() {
	prometheus.MustRegister(
		RequestsTotal,
		RequestDuration,
		AuthEvents,
		RecipesCreated,
		RateLimited,
	)
}

func RecordRequest(method, route, status string, duration time.Duration) {
	RequestsTotal.WithLabelValues(method, route, status).Inc()
	RequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

func RecordAuth(event string, ok bool) {
	outcome := "failure"
	if ok {
		outcome = "success"
	}
	AuthEvents.WithLabelValues(event, outcome).Inc()
}

func Handler() http.Handler {
	return promhttp.Handler()
}

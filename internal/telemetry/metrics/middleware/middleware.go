package middleware

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Middleware instruments wrapped handlers with in-flight, count and duration metrics.
type Middleware struct {
	inFlight prometheus.Gauge
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func New(reg prometheus.Registerer, buckets []float64) *Middleware {
	if buckets == nil {
		buckets = prometheus.ExponentialBuckets(0.1, 1.5, 5)
	}

	m := &Middleware{
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "http_in_flight_requests",
			Help: "Current number of in-flight requests",
		}),
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of requests by handler, code and method",
			},
			[]string{"handler", "code", "method"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Request duration in seconds by handler, code and method",
				Buckets: buckets,
			},
			[]string{"handler", "code", "method"},
		),
	}
	reg.MustRegister(m.inFlight, m.requests, m.duration)
	return m
}

func (m *Middleware) WrapHandler(handlerName string, handler http.Handler) http.Handler {
	return promhttp.InstrumentHandlerInFlight(
		m.inFlight,
		promhttp.InstrumentHandlerCounter(
			m.requests.MustCurryWith(prometheus.Labels{"handler": handlerName}),
			promhttp.InstrumentHandlerDuration(
				m.duration.MustCurryWith(prometheus.Labels{"handler": handlerName}),
				handler,
			),
		),
	)
}

package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/SkillSync/aiq/internal/aiq"
)

// Metrics holds the service's Prometheus collectors. A nil *Metrics records
// nothing.
type Metrics struct {
	assessments     *prometheus.CounterVec
	confidence      prometheus.Histogram
	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		assessments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "aiq_assessments_total",
			Help: "Persisted assessments by AIQ type.",
		}, []string{"aiq_type"}),
		confidence: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "aiq_confidence",
			Help:    "Confidence level of persisted assessments.",
			Buckets: prometheus.LinearBuckets(0.1, 0.1, 10),
		}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "aiq_http_requests_total",
			Help: "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "aiq_http_request_duration_seconds",
			Help:    "HTTP request latency by method, route and status.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
	reg.MustRegister(m.assessments, m.confidence, m.requests, m.requestDuration)
	return m
}

func (m *Metrics) ObserveAssessment(t aiq.Type, confidence float64) {
	if m == nil {
		return
	}
	m.assessments.WithLabelValues(string(t)).Inc()
	m.confidence.Observe(confidence)
}

// Middleware records request counts and latency labelled by the matched chi
// route pattern, so path parameters do not explode cardinality.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	if m == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if p := rctx.RoutePattern(); p != "" {
				route = p
			}
		}
		status := strconv.Itoa(ww.Status())
		m.requests.WithLabelValues(r.Method, route, status).Inc()
		m.requestDuration.WithLabelValues(r.Method, route, status).Observe(time.Since(start).Seconds())
	})
}

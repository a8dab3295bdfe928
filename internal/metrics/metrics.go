package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "mockmate",
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests received",
	}, []string{"service", "method", "path", "status"})

	httpLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "mockmate",
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests in seconds",
		Buckets:   prometheus.DefBuckets,
	}, []string{"service", "method", "path", "status"})

	httpInFlight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "mockmate",
		Name:      "http_in_flight_requests",
		Help:      "Current number of in-flight HTTP requests",
	}, []string{"service"})

	oracleFallbacks = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "mockmate",
		Name:      "oracle_fallbacks_total",
		Help:      "Oracle calls that failed and were replaced with neutral defaults",
	}, []string{"call"})

	interviewsCompleted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "mockmate",
		Name:      "interviews_completed_total",
		Help:      "Interviews that reached the terminal state",
	})

	overallScores = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "mockmate",
		Name:      "interview_overall_score",
		Help:      "Distribution of terminal readiness scores",
		Buckets:   prometheus.LinearBuckets(0, 10, 11),
	})
)

// OracleFallback records one neutral-default substitution for an oracle call.
func OracleFallback(call string) {
	oracleFallbacks.WithLabelValues(call).Inc()
}

// InterviewCompleted records a terminal report.
func InterviewCompleted(overall int) {
	interviewsCompleted.Inc()
	overallScores.Observe(float64(overall))
}

type responseRecorder struct {
	http.ResponseWriter
	status int
}

func (r *responseRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (r *responseRecorder) Write(b []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	return r.ResponseWriter.Write(b)
}

// Middleware records request metrics with Prometheus labels.
func Middleware(service string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec := &responseRecorder{ResponseWriter: w, status: http.StatusOK}
			start := time.Now()

			httpInFlight.WithLabelValues(service).Inc()
			defer httpInFlight.WithLabelValues(service).Dec()

			next.ServeHTTP(rec, r)

			labels := prometheus.Labels{
				"service": service,
				"method":  r.Method,
				"path":    r.URL.Path,
				"status":  strconv.Itoa(rec.status),
			}

			httpRequests.With(labels).Inc()
			httpLatency.With(labels).Observe(time.Since(start).Seconds())
		})
	}
}

// Handler exposes the default Prometheus metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}

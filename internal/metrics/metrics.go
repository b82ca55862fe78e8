package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "askanand",
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests received",
	}, []string{"method", "path", "status"})

	httpLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "askanand",
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests in seconds",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	testsStarted = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "askanand",
		Name:      "mock_tests_started_total",
		Help:      "Mock tests started, labelled by fulfilment mode",
	}, []string{"mode"}) // "cache", "live"

	testsDegraded = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "askanand",
		Name:      "mock_tests_degraded_total",
		Help:      "Mock tests delivered with fewer questions than requested",
	})

	testsSubmitted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "askanand",
		Name:      "mock_tests_submitted_total",
		Help:      "Mock tests submitted and scored",
	})

	generationRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "askanand",
		Name:      "generation_requests_total",
		Help:      "Question generation attempts, labelled by outcome",
	}, []string{"provider", "outcome"}) // "ok", "unavailable", "parse_error"

	questionsDropped = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "askanand",
		Name:      "generated_questions_dropped_total",
		Help:      "Generated question records dropped by validation",
	})

	pregenTasks = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "askanand",
		Name:      "pregen_tasks_total",
		Help:      "Pre-generation task outcomes",
	}, []string{"result"}) // "completed", "failed", "skipped", "deduped"
)

// Middleware records per-request counters and latency histograms.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())

		httpRequests.WithLabelValues(c.Request.Method, path, status).Inc()
		httpLatency.WithLabelValues(c.Request.Method, path, status).Observe(time.Since(start).Seconds())
	}
}

// Handler exposes the default Prometheus metrics endpoint.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}

func IncTestStarted(mode string) {
	testsStarted.WithLabelValues(mode).Inc()
}

func IncTestDegraded() {
	testsDegraded.Inc()
}

func IncTestSubmitted() {
	testsSubmitted.Inc()
}

func IncGeneration(provider, outcome string) {
	generationRequests.WithLabelValues(provider, outcome).Inc()
}

func AddQuestionsDropped(n int) {
	questionsDropped.Add(float64(n))
}

func IncPreGenTask(result string) {
	pregenTasks.WithLabelValues(result).Inc()
}

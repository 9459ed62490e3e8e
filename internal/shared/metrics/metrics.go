package metrics

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	registry = prometheus.NewRegistry()

	analysesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "idea_analyses_total",
		Help: "Orchestrated analyses by result source.",
	}, []string{"source"})

	remoteFailuresTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "idea_remote_failures_total",
		Help: "Remote analysis failures by error kind.",
	}, []string{"kind"})

	classificationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "idea_classifications_total",
		Help: "Local classifier calls by matched category.",
	}, []string{"category"})

	analysisDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "idea_analysis_duration_seconds",
		Help:    "End-to-end analysis duration in seconds.",
		Buckets: []float64{0.005, 0.05, 0.25, 0.5, 1, 2, 5, 10, 30, 60, 120},
	}, []string{"source"})

	rateLimitedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "idea_rate_limited_requests_total",
		Help: "Requests rejected by the per-client rate limiter.",
	})
)

func init() {
	registry.MustRegister(
		analysesTotal,
		remoteFailuresTotal,
		classificationsTotal,
		analysisDuration,
		rateLimitedTotal,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

// IncAnalysis counts an orchestrated analysis by the source of its report.
func IncAnalysis(source string) {
	analysesTotal.WithLabelValues(source).Inc()
}

// IncRemoteFailure counts a failed remote analysis by error kind.
func IncRemoteFailure(kind string) {
	remoteFailuresTotal.WithLabelValues(kind).Inc()
}

// IncClassification counts a local classification by category.
func IncClassification(category string) {
	classificationsTotal.WithLabelValues(category).Inc()
}

// ObserveAnalysisDuration records an analysis duration.
func ObserveAnalysisDuration(source string, d time.Duration) {
	if d < 0 {
		d = 0
	}
	analysisDuration.WithLabelValues(source).Observe(d.Seconds())
}

// IncRateLimited counts a rejected request.
func IncRateLimited() {
	rateLimitedTotal.Inc()
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	h := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
	return gin.WrapH(h)
}

package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestHandlerExposesDomainMetrics(t *testing.T) {
	gin.SetMode(gin.TestMode)
	IncAnalysis("fallback")
	IncRemoteFailure("provider")
	IncClassification("fitness")
	ObserveAnalysisDuration("fallback", 20*time.Millisecond)
	IncRateLimited()

	router := gin.New()
	router.GET("/metrics", Handler())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{
		`idea_analyses_total{source="fallback"}`,
		`idea_remote_failures_total{kind="provider"}`,
		`idea_classifications_total{category="fitness"}`,
		`idea_analysis_duration_seconds_count{source="fallback"}`,
		`idea_rate_limited_requests_total`,
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected %s in metrics output", want)
		}
	}
}

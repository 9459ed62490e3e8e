package respond

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestFailureOmitsEmptyStack(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/fail", func(c *gin.Context) {
		Failure(c, http.StatusBadRequest, "appIdea is required", "")
	})

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodPost, "/fail", nil))

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	if got := resp.Body.String(); got != `{"error":"appIdea is required"}` {
		t.Fatalf("unexpected body %s", got)
	}
}

func TestErrorEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/missing", func(c *gin.Context) {
		Error(c, http.StatusNotFound, "not_found", "analysis not found", nil)
	})

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/missing", nil))

	want := `{"error":{"code":"not_found","message":"analysis not found"}}`
	if got := resp.Body.String(); got != want {
		t.Fatalf("unexpected body %s", got)
	}
}

func TestOKDisablesCaching(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/ok", func(c *gin.Context) { OK(c, gin.H{"ok": true}) })

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/ok", nil))

	if got := resp.Header().Get("Cache-Control"); got != "no-store" {
		t.Fatalf("expected no-store, got %q", got)
	}
}

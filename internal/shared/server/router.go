package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"idea-feasibility-backend/internal/analyses"
	"idea-feasibility-backend/internal/shared/config"
	"idea-feasibility-backend/internal/shared/metrics"
	"idea-feasibility-backend/internal/shared/server/middleware"
	"idea-feasibility-backend/internal/shared/server/respond"
	"idea-feasibility-backend/internal/shared/telemetry"
)

const analyzeRateLimitGroup = "ANALYZE"

// RouterDeps carries the handlers mounted on the router.
type RouterDeps struct {
	Config          config.Config
	AnalysisHandler *analyses.Handler
	Limiter         *middleware.RateLimiter
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// ClientIP keys the rate limiter; forwarding headers only count from listed proxies.
	if err := r.SetTrustedProxies(deps.Config.TrustedProxies); err != nil {
		telemetry.Error("router.trusted_proxies_invalid", map[string]any{
			"proxies": deps.Config.TrustedProxies,
			"err":     err.Error(),
		})
		_ = r.SetTrustedProxies(nil)
	}

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(deps.Config.ExposeStack()),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.RateLimit(middleware.RateLimitConfig{
			Rules:    rateLimitRules(deps.Config),
			GroupFor: groupFor,
			Limiter:  deps.Limiter,
		}),
	)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	if deps.AnalysisHandler != nil {
		deps.AnalysisHandler.RegisterRoutes(api)
	}

	return r
}

// rateLimitRules limits only the analysis endpoints; a non-positive rate disables limiting.
func rateLimitRules(cfg config.Config) map[string]middleware.RateLimitRule {
	if cfg.RateLimitRPS <= 0 {
		return nil
	}
	burst := cfg.RateLimitBurst
	if burst <= 0 {
		burst = 1
	}
	return map[string]middleware.RateLimitRule{
		analyzeRateLimitGroup: {Rate: cfg.RateLimitRPS, Burst: burst},
	}
}

func groupFor(c *gin.Context) string {
	if c.Request.Method != http.MethodPost {
		return ""
	}
	switch c.FullPath() {
	case "/api/v1/analyze", "/api/v1/classify":
		return analyzeRateLimitGroup
	}
	return ""
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}

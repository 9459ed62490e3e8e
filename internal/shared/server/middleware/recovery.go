package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"idea-feasibility-backend/internal/shared/server/respond"
	"idea-feasibility-backend/internal/shared/telemetry"
)

// Recovery turns a panic into a 500 {"error","stack"} payload. The panic value and stack
// are only sent when exposeStack is set; they are always logged.
func Recovery(exposeStack bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			stack := string(debug.Stack())
			telemetry.Error("panic", map[string]any{
				"request_id": RequestIDFromContext(c),
				"error":      fmt.Sprint(rec),
				"stack":      stack,
				"path":       c.Request.URL.Path,
				"method":     c.Request.Method,
			})
			message := fmt.Sprint(rec)
			if !exposeStack {
				message, stack = "internal server error", ""
			}
			respond.Failure(c, http.StatusInternalServerError, message, stack)
		}()
		c.Next()
	}
}

package analyses

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"idea-feasibility-backend/internal/llm"
	"idea-feasibility-backend/internal/shared/server/middleware"
	"idea-feasibility-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the analyses service.
type Handler struct {
	Svc         *Service
	ExposeStack bool
}

// NewHandler constructs a Handler. exposeStack adds the error chain to 500 payloads.
func NewHandler(svc *Service, exposeStack bool) *Handler {
	return &Handler{Svc: svc, ExposeStack: exposeStack}
}

type ideaRequest struct {
	AppIdea string `json:"appIdea"`
}

// RegisterRoutes attaches analysis routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/analyze", h.analyze)
	rg.POST("/classify", h.classify)
	rg.GET("/analyses", h.listAnalyses)
	rg.GET("/analyses/:id", h.getAnalysis)
}

func (h *Handler) analyze(c *gin.Context) {
	idea, ok := bindIdea(c)
	if !ok {
		return
	}
	ctx := WithRequestID(c.Request.Context(), middleware.RequestIDFromContext(c))

	if strictRemote(c) {
		a, err := h.Svc.AnalyzeRemote(ctx, idea)
		if err != nil {
			stack := ""
			if h.ExposeStack {
				stack = errorChain(err)
			}
			respond.Failure(c, http.StatusInternalServerError, err.Error(), stack)
			return
		}
		writeAnalysis(c, a)
		return
	}

	writeAnalysis(c, h.Svc.Analyze(ctx, idea))
}

func (h *Handler) classify(c *gin.Context) {
	idea, ok := bindIdea(c)
	if !ok {
		return
	}
	r, category := h.Svc.Classify(idea)
	c.Header("X-Analysis-Category", category)
	c.Set(middleware.AnalysisSourceKey, SourceFallback)
	respond.OK(c, r)
}

func (h *Handler) getAnalysis(c *gin.Context) {
	analysisID := strings.TrimSpace(c.Param("id"))
	if analysisID == "" {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "analysis id is required", nil)
		return
	}

	a, err := h.Svc.Get(c.Request.Context(), analysisID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, ErrorCodeNotFound, "analysis not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, ErrorCodeInternal, "failed to fetch analysis", nil)
		}
		return
	}
	c.Set(middleware.AnalysisIDKey, a.ID)
	respond.OK(c, a)
}

func (h *Handler) listAnalyses(c *gin.Context) {
	limit := defaultListLimit
	offset := 0
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	if v := c.Query("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			offset = parsed
		}
	}

	items, err := h.Svc.List(c.Request.Context(), limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, ErrorCodeInternal, "failed to list analyses", nil)
		return
	}
	resp := make([]Summary, 0, len(items))
	for _, a := range items {
		resp = append(resp, a.Summary())
	}
	respond.OK(c, resp)
}

// bindIdea writes the 400 payload itself when the body has no usable idea.
func bindIdea(c *gin.Context) (string, bool) {
	var req ideaRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.AppIdea) == "" {
		respond.Failure(c, http.StatusBadRequest, ErrIdeaRequired.Error(), "")
		return "", false
	}
	return strings.TrimSpace(req.AppIdea), true
}

func strictRemote(c *gin.Context) bool {
	v, ok := c.GetQuery("fallback")
	if !ok {
		return false
	}
	enabled, err := strconv.ParseBool(v)
	return err == nil && !enabled
}

func writeAnalysis(c *gin.Context, a Analysis) {
	c.Header("X-Analysis-Id", a.ID)
	c.Header("X-Analysis-Source", a.Source)
	c.Set(middleware.AnalysisIDKey, a.ID)
	c.Set(middleware.AnalysisSourceKey, a.Source)
	respond.OK(c, a.Report)
}

// errorChain lists the wrapped errors outermost first, tagged with the error kind.
func errorChain(err error) string {
	var b strings.Builder
	b.WriteString("kind=")
	b.WriteString(llm.Kind(err))
	for e := err; e != nil; e = errors.Unwrap(e) {
		b.WriteString("\n  ")
		b.WriteString(e.Error())
	}
	return b.String()
}

package analyses

import (
	"time"

	"idea-feasibility-backend/internal/report"
)

// Report sources.
const (
	SourceRemote   = "remote"
	SourceFallback = "fallback"
)

// Analysis is one orchestrated analysis of an app idea.
type Analysis struct {
	ID             string        `json:"analysisId"`
	Idea           string        `json:"idea"`
	Source         string        `json:"source"`
	Category       string        `json:"category,omitempty"`
	Provider       string        `json:"provider,omitempty"`
	Model          string        `json:"model,omitempty"`
	FallbackReason string        `json:"fallbackReason,omitempty"`
	Report         report.Report `json:"report"`
	CreatedAt      time.Time     `json:"createdAt"`
}

// Summary is the list view of an Analysis.
type Summary struct {
	ID        string    `json:"analysisId"`
	Idea      string    `json:"idea"`
	Source    string    `json:"source"`
	Category  string    `json:"category,omitempty"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"createdAt"`
}

func (a Analysis) Summary() Summary {
	return Summary{
		ID:        a.ID,
		Idea:      a.Idea,
		Source:    a.Source,
		Category:  a.Category,
		Score:     a.Report.Feasibility.Score,
		CreatedAt: a.CreatedAt,
	}
}

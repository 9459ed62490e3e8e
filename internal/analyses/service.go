package analyses

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"idea-feasibility-backend/internal/classifier"
	"idea-feasibility-backend/internal/llm"
	"idea-feasibility-backend/internal/report"
	"idea-feasibility-backend/internal/shared/metrics"
	"idea-feasibility-backend/internal/shared/storage/object"
	"idea-feasibility-backend/internal/shared/telemetry"
)

const rawArchivePrefix = "provider-raw/"

// Service runs the two-stage analysis pipeline: the remote analyzer first, the local
// classifier only when the remote stage yields an error.
type Service struct {
	Repo    Repo
	LLM     llm.Client
	Archive object.ObjectStore

	Now   func() time.Time
	NewID func() string
}

// RemoteOutcome is the result of the remote stage. Exactly one of Report or Err is
// meaningful; Raw holds the provider body when one was received.
type RemoteOutcome struct {
	Report report.Report
	Raw    []byte
	Err    error
}

// Analyze returns a report for idea. It has no error result: any remote failure is
// answered by the local classifier.
func (s *Service) Analyze(ctx context.Context, idea string) Analysis {
	start := s.now()
	a := s.newAnalysis(idea, start)

	out := s.remoteStage(ctx, idea)
	if out.Err == nil {
		a.Source = SourceRemote
		a.Report = out.Report
	} else {
		kind := llm.Kind(out.Err)
		a.Source = SourceFallback
		a.FallbackReason = kind + ": " + out.Err.Error()
		a.Report, a.Category = s.fallbackStage(idea)
		telemetry.Warn("analysis.fallback", map[string]any{
			"request_id":  requestIDFromContext(ctx),
			"analysis_id": a.ID,
			"kind":        kind,
			"err":         out.Err.Error(),
			"category":    a.Category,
		})
	}

	s.finish(ctx, a, out.Raw, start)
	return a
}

// AnalyzeRemote runs only the remote stage and reports its failure to the caller.
func (s *Service) AnalyzeRemote(ctx context.Context, idea string) (Analysis, error) {
	start := s.now()
	a := s.newAnalysis(idea, start)

	out := s.remoteStage(ctx, idea)
	if out.Err != nil {
		s.archiveRaw(ctx, a.ID, out.Raw)
		return Analysis{}, out.Err
	}
	a.Source = SourceRemote
	a.Report = out.Report
	s.finish(ctx, a, out.Raw, start)
	return a, nil
}

// Classify runs the local classifier alone.
func (s *Service) Classify(idea string) (report.Report, string) {
	return s.fallbackStage(idea)
}

// Get returns a stored analysis.
func (s *Service) Get(ctx context.Context, analysisID string) (Analysis, error) {
	if s.Repo == nil {
		return Analysis{}, ErrNotFound
	}
	return s.Repo.GetByID(ctx, analysisID)
}

// List returns stored analyses newest first.
func (s *Service) List(ctx context.Context, limit, offset int) ([]Analysis, error) {
	if s.Repo == nil {
		return []Analysis{}, nil
	}
	return s.Repo.List(ctx, limit, offset)
}

func (s *Service) remoteStage(ctx context.Context, idea string) RemoteOutcome {
	if s.LLM == nil {
		return RemoteOutcome{Err: fmt.Errorf("%w: no remote analyzer configured", llm.ErrConfiguration)}
	}

	var raw []byte
	content, err := s.LLM.AnalyzeIdea(llm.WithRawResponseCapture(ctx, &raw), idea)
	out := RemoteOutcome{Raw: raw}
	if err != nil {
		out.Err = err
	} else if out.Report, err = report.Parse(content); err != nil {
		out.Err = err
	}
	if out.Err != nil {
		metrics.IncRemoteFailure(llm.Kind(out.Err))
	}
	return out
}

func (s *Service) fallbackStage(idea string) (report.Report, string) {
	category := classifier.Detect(idea)
	metrics.IncClassification(category)
	return classifier.Classify(idea), category
}

func (s *Service) newAnalysis(idea string, now time.Time) Analysis {
	a := Analysis{
		ID:        s.newID(),
		Idea:      idea,
		CreatedAt: now,
	}
	if d, ok := s.LLM.(llm.Describer); ok {
		a.Provider = d.Provider()
		a.Model = d.Model()
	}
	return a
}

// finish records metrics and side effects. Failures here are logged and never change
// the analysis handed back to the caller.
func (s *Service) finish(ctx context.Context, a Analysis, raw []byte, start time.Time) {
	elapsed := s.now().Sub(start)
	metrics.IncAnalysis(a.Source)
	metrics.ObserveAnalysisDuration(a.Source, elapsed)

	s.archiveRaw(ctx, a.ID, raw)
	if s.Repo != nil {
		if err := s.Repo.Create(context.WithoutCancel(ctx), a); err != nil {
			telemetry.Error("analysis.persist_failed", map[string]any{
				"request_id":  requestIDFromContext(ctx),
				"analysis_id": a.ID,
				"err":         err.Error(),
			})
		}
	}

	telemetry.Info("analysis.complete", map[string]any{
		"request_id":  requestIDFromContext(ctx),
		"analysis_id": a.ID,
		"source":      a.Source,
		"category":    a.Category,
		"score":       a.Report.Feasibility.Score,
		"duration_ms": elapsed.Milliseconds(),
	})
}

func (s *Service) archiveRaw(ctx context.Context, analysisID string, raw []byte) {
	if s.Archive == nil || len(raw) == 0 {
		return
	}
	key := RawArchiveKey(analysisID)
	if _, err := s.Archive.SaveWithKey(context.WithoutCancel(ctx), key, "application/json", bytes.NewReader(raw)); err != nil {
		telemetry.Error("analysis.archive_failed", map[string]any{
			"request_id":  requestIDFromContext(ctx),
			"analysis_id": analysisID,
			"key":         key,
			"err":         err.Error(),
		})
	}
}

// RawArchiveKey is the object key of the raw provider response for an analysis.
func RawArchiveKey(analysisID string) string {
	return rawArchivePrefix + strings.TrimSpace(analysisID) + ".json"
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

func (s *Service) newID() string {
	if s.NewID != nil {
		return s.NewID()
	}
	return uuid.NewString()
}

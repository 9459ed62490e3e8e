package analyses

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"idea-feasibility-backend/internal/llm"
	"idea-feasibility-backend/internal/llm/openai"
	"idea-feasibility-backend/internal/report"
)

func remoteReport() report.Report {
	return report.Report{
		Feasibility: report.Feasibility{Score: 82, Factors: []string{"clear need"}, Challenges: []string{"crowded market"}},
		TechStack: report.TechStack{
			Frontend:   []string{"SvelteKit"},
			Backend:    []string{"Go"},
			Database:   []string{"PostgreSQL"},
			Additional: []string{},
		},
		Timeline: report.Timeline{
			MVP:         "2 months",
			FullVersion: "6 months",
			Phases:      []report.Phase{{Name: "Build", Duration: "8 weeks", Description: "core"}},
		},
		TargetUsers:  report.TargetUsers{Primary: "home cooks", Secondary: []string{"food bloggers"}, Demographics: []string{"Ages 25-45"}},
		Monetization: report.Monetization{Primary: "subscription", Alternatives: []string{"ads"}, RevenueProjection: "$100K"},
		Competitors: report.Competitors{
			Direct:          []string{"Paprika"},
			Indirect:        []string{"cookbooks"},
			MarketGap:       "offline-first",
			Differentiation: []string{"privacy"},
		},
	}
}

// chatBody wraps content the way a chat-completions endpoint does.
func chatBody(t *testing.T, content string) string {
	t.Helper()
	body, err := json.Marshal(map[string]any{
		"id":    "chatcmpl-1",
		"model": "gpt-4o-mini",
		"choices": []map[string]any{
			{"message": map[string]any{"role": "assistant", "content": content}},
		},
	})
	if err != nil {
		t.Fatalf("marshal chat body: %v", err)
	}
	return string(body)
}

func reportJSON(t *testing.T, r report.Report) string {
	t.Helper()
	raw, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("marshal report: %v", err)
	}
	return string(raw)
}

// providerServer serves a fixed status/body and counts requests.
func providerServer(t *testing.T, status int, body string) (*openai.Client, *atomic.Int32) {
	t.Helper()
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return openai.NewClient(openai.Options{BaseURL: server.URL, APIKey: "test-key", Model: "gpt-4o-mini"}), &hits
}

func failingClient(err error) llm.Client {
	return llm.ClientFunc(func(ctx context.Context, idea string) (json.RawMessage, error) {
		return nil, err
	})
}

func fixedClock() func() time.Time {
	now := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	return func() time.Time { return now }
}

func sequentialIDs() func() string {
	var n atomic.Int32
	return func() string { return fmt.Sprintf("analysis-%d", n.Add(1)) }
}

type failingRepo struct{}

func (failingRepo) Create(ctx context.Context, a Analysis) error {
	return errors.New("db down")
}

func (failingRepo) GetByID(ctx context.Context, id string) (Analysis, error) {
	return Analysis{}, errors.New("db down")
}

func (failingRepo) List(ctx context.Context, limit, offset int) ([]Analysis, error) {
	return nil, errors.New("db down")
}

package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"idea-feasibility-backend/internal/analyses"
	"idea-feasibility-backend/internal/classifier"
	"idea-feasibility-backend/internal/llm/openai"
	"idea-feasibility-backend/internal/report"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestClassifyCommand(t *testing.T) {
	stdout, stderr, err := run(t, "classify", "A", "fitness", "app")
	if err != nil {
		t.Fatalf("classify: %v", err)
	}
	if !strings.Contains(stderr, "category: fitness") {
		t.Fatalf("unexpected stderr %q", stderr)
	}
	var got report.Report
	if err := json.Unmarshal([]byte(stdout), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if diff := cmp.Diff(classifier.Classify("A fitness app"), got); diff != "" {
		t.Fatalf("report mismatch (-want +got):\n%s", diff)
	}
}

func TestClassifyRejectsBlankIdea(t *testing.T) {
	_, _, err := run(t, "classify", "  ")
	if !errors.Is(err, analyses.ErrIdeaRequired) {
		t.Fatalf("expected ErrIdeaRequired, got %v", err)
	}
}

func TestCategoriesCommand(t *testing.T) {
	stdout, _, err := run(t, "categories")
	if err != nil {
		t.Fatalf("categories: %v", err)
	}
	if got := strings.Fields(stdout); !cmp.Equal(got, classifier.Categories()) {
		t.Fatalf("unexpected categories %v", got)
	}
}

func TestPromptCommand(t *testing.T) {
	stdout, stderr, err := run(t, "prompt", "A recipe sharing app")
	if err != nil {
		t.Fatalf("prompt: %v", err)
	}
	var messages []openai.Message
	if err := json.Unmarshal([]byte(stdout), &messages); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(messages) != 2 || messages[0].Role != "system" || !strings.Contains(messages[1].Content, `"A recipe sharing app"`) {
		t.Fatalf("unexpected messages %+v", messages)
	}
	if !strings.Contains(stderr, "prompt_hash: "+openai.PromptHash(messages)) {
		t.Fatalf("unexpected stderr %q", stderr)
	}
}

func TestAnalyzeCommandFallsBackWithoutKey(t *testing.T) {
	t.Setenv("LLM_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")
	stdout, stderr, err := run(t, "analyze", "--env-file", filepath.Join(t.TempDir(), "missing.env"), "xyzzy plugh quux")
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if !strings.Contains(stderr, "source: fallback") || !strings.Contains(stderr, "fallback: configuration: ") {
		t.Fatalf("unexpected stderr %q", stderr)
	}
	var got report.Report
	if err := json.Unmarshal([]byte(stdout), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Feasibility.Score != 70 {
		t.Fatalf("expected default score, got %d", got.Feasibility.Score)
	}
}

func TestAnalyzeCommandStrictReturnsProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"bad key","type":"invalid_request_error"}}`))
	}))
	defer server.Close()

	envFile := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(envFile, []byte("LLM_BASE_URL="+server.URL+"\nLLM_API_KEY=test-key\n"), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Setenv("LLM_BASE_URL", "")
	t.Setenv("LLM_API_KEY", "")

	_, _, err := run(t, "analyze", "--strict", "--env-file", envFile, "idea")
	if err == nil || !strings.Contains(err.Error(), "bad key") {
		t.Fatalf("expected provider error, got %v", err)
	}
}

func TestAnalyzeVerboseLogsToStderr(t *testing.T) {
	t.Setenv("LLM_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")
	stdout, stderr, err := run(t, "analyze", "--verbose", "--env-file", filepath.Join(t.TempDir(), "missing.env"), "A fitness app")
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	var got report.Report
	if err := json.Unmarshal([]byte(stdout), &got); err != nil {
		t.Fatalf("stdout must hold only the report: %v\n%s", err, stdout)
	}
	for _, msg := range []string{`"msg":"config.llm_api_key_missing"`, `"msg":"analysis.fallback"`, `"msg":"analysis.complete"`} {
		if !strings.Contains(stderr, msg) {
			t.Fatalf("expected %s on stderr, got %q", msg, stderr)
		}
	}
}

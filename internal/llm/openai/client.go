package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"idea-feasibility-backend/internal/llm"
	"idea-feasibility-backend/internal/shared/telemetry"
)

const (
	// DefaultBaseURL is the OpenAI API root; any OpenAI-compatible root (e.g. Ollama's /v1) works.
	DefaultBaseURL = "https://api.openai.com/v1"
	DefaultModel   = "gpt-4o-mini"

	temperature = 0.7
)

// Options configures a Client.
type Options struct {
	BaseURL        string
	APIKey         string
	Model          string
	Timeout        time.Duration
	RawLogMaxBytes int
	HTTPClient     *http.Client
}

// Client implements llm.Client over an OpenAI-compatible chat-completions endpoint.
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	rawLogMax  int
	httpClient *http.Client
}

// NewClient constructs a client. A missing API key is not an error here; every call
// then fails with llm.ErrConfiguration so callers fall back.
func NewClient(opts Options) *Client {
	baseURL := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	model := strings.TrimSpace(opts.Model)
	if model == "" {
		model = DefaultModel
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = 120 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Client{
		baseURL:    baseURL,
		apiKey:     strings.TrimSpace(opts.APIKey),
		model:      model,
		rawLogMax:  opts.RawLogMaxBytes,
		httpClient: httpClient,
	}
}

type chatRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
}

type chatResponse struct {
	ID      string `json:"id"`
	Model   string `json:"model"`
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
	Usage *struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage,omitempty"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// Provider names the endpoint host, e.g. "api.openai.com" or "localhost:11434".
func (c *Client) Provider() string {
	if u, err := url.Parse(c.baseURL); err == nil && u.Host != "" {
		return u.Host
	}
	return c.baseURL
}

// Model returns the configured model identifier.
func (c *Client) Model() string {
	return c.model
}

// AnalyzeIdea sends one chat completion and returns the message content unchanged.
// There are no retries; the caller decides what to do on failure.
func (c *Client) AnalyzeIdea(ctx context.Context, idea string) (json.RawMessage, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("%w: API key missing", llm.ErrConfiguration)
	}

	messages := BuildPrompt(idea)
	payload, err := json.Marshal(chatRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: encode request: %v", llm.ErrConfiguration, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", llm.ErrConfiguration, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || strings.Contains(err.Error(), "Client.Timeout") {
			return nil, fmt.Errorf("%w: request timeout: %w", llm.ErrTransport, err)
		}
		return nil, fmt.Errorf("%w: %w", llm.ErrTransport, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %w", llm.ErrTransport, err)
	}
	if sink, ok := llm.RawResponseSinkFromContext(ctx); ok {
		*sink = append((*sink)[:0], body...)
	}
	telemetry.Info("llm.raw_response", map[string]any{
		"provider":    c.Provider(),
		"model":       c.model,
		"status":      resp.StatusCode,
		"duration_ms": time.Since(start).Milliseconds(),
		"prompt_hash": PromptHash(messages),
		"body":        truncate(body, c.rawLogMax),
		"body_bytes":  len(body),
	})

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		if resp.StatusCode >= 400 {
			return nil, &llm.ProviderError{Message: strings.TrimSpace(string(body)), StatusCode: resp.StatusCode}
		}
		return nil, fmt.Errorf("%w: response parse: %v", llm.ErrMalformedResponse, err)
	}
	if parsed.Error != nil {
		return nil, &llm.ProviderError{Message: parsed.Error.Message, Type: parsed.Error.Type, StatusCode: resp.StatusCode}
	}
	if resp.StatusCode >= 400 {
		return nil, &llm.ProviderError{Message: http.StatusText(resp.StatusCode), StatusCode: resp.StatusCode}
	}
	if len(parsed.Choices) == 0 {
		return nil, fmt.Errorf("%w: no content returned", llm.ErrMalformedResponse)
	}
	content := strings.TrimSpace(parsed.Choices[0].Message.Content)
	if content == "" {
		return nil, fmt.Errorf("%w: no content returned", llm.ErrMalformedResponse)
	}
	if parsed.Usage != nil {
		telemetry.Info("llm.usage", map[string]any{
			"model":             c.model,
			"prompt_tokens":     parsed.Usage.PromptTokens,
			"completion_tokens": parsed.Usage.CompletionTokens,
			"total_tokens":      parsed.Usage.TotalTokens,
		})
	}
	return json.RawMessage(content), nil
}

// truncate caps body for logging. limit <= 0 disables truncation.
func truncate(body []byte, limit int) string {
	if limit <= 0 || len(body) <= limit {
		return string(body)
	}
	return string(body[:limit]) + "...(truncated)"
}

var (
	_ llm.Client    = (*Client)(nil)
	_ llm.Describer = (*Client)(nil)
)

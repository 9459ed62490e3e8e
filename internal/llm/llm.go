package llm

import (
	"context"
	"encoding/json"
)

// Client abstracts remote providers for app-idea analysis. Implementations return the
// message content produced by the provider, which is expected to be a JSON report.
type Client interface {
	AnalyzeIdea(ctx context.Context, idea string) (json.RawMessage, error)
}

// Describer is implemented by clients that can name the provider and model behind them.
type Describer interface {
	Provider() string
	Model() string
}

type rawResponseKey struct{}

// WithRawResponseCapture returns a context that receives the raw provider response body.
func WithRawResponseCapture(ctx context.Context, sink *[]byte) context.Context {
	return context.WithValue(ctx, rawResponseKey{}, sink)
}

// RawResponseSinkFromContext returns the raw response sink, if any.
func RawResponseSinkFromContext(ctx context.Context) (*[]byte, bool) {
	sink, ok := ctx.Value(rawResponseKey{}).(*[]byte)
	return sink, ok && sink != nil
}

// ClientFunc adapts a function to the Client interface.
type ClientFunc func(ctx context.Context, idea string) (json.RawMessage, error)

// AnalyzeIdea calls f.
func (f ClientFunc) AnalyzeIdea(ctx context.Context, idea string) (json.RawMessage, error) {
	return f(ctx, idea)
}

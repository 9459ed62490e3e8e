package llm

import (
	"errors"
	"fmt"

	"idea-feasibility-backend/internal/report"
)

var (
	// ErrConfiguration means a required credential or endpoint is missing. No request was sent.
	ErrConfiguration = errors.New("llm configuration error")
	// ErrTransport means the provider could not be reached.
	ErrTransport = errors.New("llm transport error")
	// ErrProvider means the provider answered with an error payload.
	ErrProvider = errors.New("llm provider error")
	// ErrMalformedResponse means the body was not JSON or had no message content.
	ErrMalformedResponse = errors.New("llm malformed response")
)

// ProviderError carries the error reported by the provider.
type ProviderError struct {
	Message    string
	Type       string
	StatusCode int
}

func (e *ProviderError) Error() string {
	if e.Type == "" {
		return fmt.Sprintf("provider error (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("provider error: %s (%s)", e.Message, e.Type)
}

// Is lets errors.Is(err, ErrProvider) match a *ProviderError.
func (e *ProviderError) Is(target error) bool {
	return target == ErrProvider
}

// Error kinds reported by Kind.
const (
	KindConfiguration     = "configuration"
	KindTransport         = "transport"
	KindProvider          = "provider"
	KindMalformedResponse = "malformed_response"
	KindInvalidReport     = "invalid_report"
	KindUnknown           = "unknown"
)

// Kind classifies err into a stable label for logs and metrics.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrConfiguration):
		return KindConfiguration
	case errors.Is(err, ErrTransport):
		return KindTransport
	case errors.Is(err, ErrProvider):
		return KindProvider
	case errors.Is(err, ErrMalformedResponse):
		return KindMalformedResponse
	case errors.Is(err, report.ErrInvalidReport):
		return KindInvalidReport
	default:
		return KindUnknown
	}
}

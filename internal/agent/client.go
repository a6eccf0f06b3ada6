package agent

import (
	"context"
	"errors"
	"fmt"
)

// Model is a generative text model: one prompt in, free text out.
type Model interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ErrNotConfigured is returned when no API key is available.
var ErrNotConfigured = errors.New("generative model is not configured")

// ErrorCode classifies model call failures.
type ErrorCode string

const (
	ErrUnavailable   ErrorCode = "MODEL_UNAVAILABLE"
	ErrRateLimited   ErrorCode = "MODEL_RATE_LIMITED"
	ErrRejected      ErrorCode = "MODEL_REJECTED"
	ErrEmptyResponse ErrorCode = "MODEL_EMPTY_RESPONSE"
)

// Error is a structured model call failure.
type Error struct {
	Code      ErrorCode
	Message   string
	Retryable bool
	Cause     error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

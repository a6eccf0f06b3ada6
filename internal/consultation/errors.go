package consultation

import (
	"errors"
	"fmt"
	"net/http"
)

type ErrorCode string

const (
	CodeInvalidInput     ErrorCode = "INVALID_INPUT"
	CodeModelUnavailable ErrorCode = "MODEL_UNAVAILABLE"
	CodeModelFailed      ErrorCode = "MODEL_FAILED"
	CodeExtractionFailed ErrorCode = "EXTRACTION_FAILED"
	CodeInternal         ErrorCode = "INTERNAL"
)

// ErrModelUnavailable is returned when no generative model is configured.
var ErrModelUnavailable = &Error{Code: CodeModelUnavailable, Message: "AI model not initialized"}

// Error is a service failure carrying a client-facing message.
type Error struct {
	Code    ErrorCode
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches any *Error with the same code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

func invalidInput(msg string) *Error {
	return &Error{Code: CodeInvalidInput, Message: msg}
}

// statusFor maps an error to its HTTP status code.
func statusFor(err error) int {
	var e *Error
	if errors.As(err, &e) && e.Code == CodeInvalidInput {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

package agent

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"google.golang.org/genai"
)

// FallbackModel is used when discovery finds no Gemini model.
const FallbackModel = "gemini-1.5-pro"

const defaultTemperature = 0.3

// GeminiConfig holds what is needed to build a Gemini client.
type GeminiConfig struct {
	APIKey string
	// Model skips discovery when set.
	Model string
	// BaseURL overrides the Gemini API endpoint.
	BaseURL string
	Timeout time.Duration
	Retry   *RetryConfig
}

// Gemini implements Model on top of the Gemini API.
type Gemini struct {
	client      *genai.Client
	model       string
	timeout     time.Duration
	temperature float32
	retry       RetryConfig
}

// NewGemini creates a client and resolves the model name, listing the
// available models when cfg.Model is empty.
func NewGemini(ctx context.Context, cfg GeminiConfig) (*Gemini, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, ErrNotConfigured
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      cfg.APIKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: cfg.BaseURL},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	g := &Gemini{
		client:      client,
		model:       cfg.Model,
		timeout:     cfg.Timeout,
		temperature: defaultTemperature,
		retry:       DefaultRetryConfig,
	}
	if g.timeout <= 0 {
		g.timeout = 30 * time.Second
	}
	if cfg.Retry != nil {
		g.retry = *cfg.Retry
	}

	if g.model == "" {
		g.model = g.discover(ctx)
	}
	log.WithField("model", g.model).Info("gemini model selected")

	return g, nil
}

// ModelName is the resolved model name.
func (g *Gemini) ModelName() string {
	return g.model
}

func (g *Gemini) discover(ctx context.Context) string {
	page, err := g.client.Models.List(ctx, &genai.ListModelsConfig{})
	if err != nil {
		log.WithError(err).Warn("listing gemini models failed, using fallback")
		return FallbackModel
	}

	names := make([]string, 0, len(page.Items))
	for _, m := range page.Items {
		names = append(names, m.Name)
	}
	log.WithField("models", names).Debug("available models")
	return SelectModel(names)
}

// SelectModel prefers the first "pro" Gemini model, then any Gemini model,
// then FallbackModel.
func SelectModel(names []string) string {
	for _, n := range names {
		lower := strings.ToLower(n)
		if strings.Contains(lower, "gemini") && strings.Contains(lower, "pro") {
			return n
		}
	}
	for _, n := range names {
		if strings.Contains(strings.ToLower(n), "gemini") {
			return n
		}
	}
	return FallbackModel
}

// Generate sends prompt as a single user turn and returns the response text.
func (g *Gemini) Generate(ctx context.Context, prompt string) (string, error) {
	return WithRetry(ctx, g.retry, func(ctx context.Context) (string, error) {
		callCtx, cancel := context.WithTimeout(ctx, g.timeout)
		defer cancel()

		result, err := g.client.Models.GenerateContent(callCtx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
			Temperature: genai.Ptr(g.temperature),
		})
		if err != nil {
			return "", classifyError(err)
		}

		text := result.Text()
		if strings.TrimSpace(text) == "" {
			return "", &Error{Code: ErrEmptyResponse, Message: "Gemini returned empty response"}
		}
		return text, nil
	})
}

// classifyError converts Gemini failures into *Error values.
func classifyError(err error) *Error {
	status := 0
	var apiErr genai.APIError
	var apiErrPtr *genai.APIError
	switch {
	case errors.As(err, &apiErr):
		status = apiErr.Code
	case errors.As(err, &apiErrPtr):
		status = apiErrPtr.Code
	}

	switch {
	case status == 0:
		return &Error{Code: ErrUnavailable, Message: "Gemini API request failed", Retryable: true, Cause: err}
	case status == http.StatusTooManyRequests:
		return &Error{Code: ErrRateLimited, Message: "Gemini API rate limited", Retryable: true, Cause: err}
	case status >= http.StatusInternalServerError:
		return &Error{Code: ErrUnavailable, Message: fmt.Sprintf("Gemini API error (HTTP %d)", status), Retryable: true, Cause: err}
	default:
		return &Error{Code: ErrRejected, Message: fmt.Sprintf("Gemini API error (HTTP %d)", status), Cause: err}
	}
}

package agent

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func candidateResponse(text string) map[string]any {
	return map[string]any{
		"candidates": []any{
			map[string]any{
				"content": map[string]any{
					"role":  "model",
					"parts": []any{map[string]any{"text": text}},
				},
				"finishReason": "STOP",
			},
		},
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func newTestGemini(t *testing.T, handler http.HandlerFunc, model string) *Gemini {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	retry := fastRetry
	g, err := NewGemini(context.Background(), GeminiConfig{
		APIKey:  "test-key",
		Model:   model,
		BaseURL: server.URL,
		Timeout: 5 * time.Second,
		Retry:   &retry,
	})
	require.NoError(t, err)
	return g
}

func TestNewGemini_MissingKey(t *testing.T) {
	_, err := NewGemini(context.Background(), GeminiConfig{APIKey: "  "})
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestGemini_Generate(t *testing.T) {
	var gotBody string
	g := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, ":generateContent") {
			t.Errorf("unexpected path: %s", r.URL.Path)
			http.NotFound(w, r)
			return
		}
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		writeJSON(w, http.StatusOK, candidateResponse(`{"severity": "mild"}`))
	}, "gemini-test")

	text, err := g.Generate(context.Background(), "Analyze these symptoms: cough")
	require.NoError(t, err)
	assert.Equal(t, `{"severity": "mild"}`, text)
	assert.Contains(t, gotBody, "Analyze these symptoms: cough")
	assert.Equal(t, "gemini-test", g.ModelName())
}

func TestGemini_Generate_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	g := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			writeJSON(w, http.StatusServiceUnavailable, map[string]any{
				"error": map[string]any{"code": 503, "message": "overloaded", "status": "UNAVAILABLE"},
			})
			return
		}
		writeJSON(w, http.StatusOK, candidateResponse("recovered"))
	}, "gemini-test")

	text, err := g.Generate(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Equal(t, "recovered", text)
	assert.Equal(t, int32(2), calls.Load())
}

func TestGemini_Generate_ClientErrorNotRetried(t *testing.T) {
	var calls atomic.Int32
	g := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error": map[string]any{"code": 400, "message": "API key not valid", "status": "INVALID_ARGUMENT"},
		})
	}, "gemini-test")

	_, err := g.Generate(context.Background(), "prompt")
	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())

	var modelErr *Error
	require.True(t, errors.As(err, &modelErr))
	assert.Equal(t, ErrRejected, modelErr.Code)
	assert.False(t, modelErr.Retryable)
}

func TestGemini_Generate_EmptyText(t *testing.T) {
	g := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, candidateResponse("   "))
	}, "gemini-test")

	_, err := g.Generate(context.Background(), "prompt")

	var modelErr *Error
	require.True(t, errors.As(err, &modelErr))
	assert.Equal(t, ErrEmptyResponse, modelErr.Code)
}

func TestNewGemini_DiscoversModel(t *testing.T) {
	g := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || !strings.HasSuffix(r.URL.Path, "/models") {
			http.NotFound(w, r)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"models": []any{
				map[string]any{"name": "models/embedding-001"},
				map[string]any{"name": "models/gemini-1.5-flash"},
				map[string]any{"name": "models/gemini-1.5-pro"},
			},
		})
	}, "")

	assert.Equal(t, "models/gemini-1.5-pro", g.ModelName())
}

func TestNewGemini_DiscoveryFailureUsesFallback(t *testing.T) {
	g := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusForbidden, map[string]any{
			"error": map[string]any{"code": 403, "message": "denied", "status": "PERMISSION_DENIED"},
		})
	}, "")

	assert.Equal(t, FallbackModel, g.ModelName())
}

func TestSelectModel(t *testing.T) {
	tests := []struct {
		name  string
		names []string
		want  string
	}{
		{"prefers pro", []string{"models/gemini-1.5-flash", "models/gemini-1.5-pro"}, "models/gemini-1.5-pro"},
		{"any gemini", []string{"models/text-bison", "models/gemini-2.0-flash"}, "models/gemini-2.0-flash"},
		{"case insensitive", []string{"models/Gemini-PRO"}, "models/Gemini-PRO"},
		{"fallback", []string{"models/text-bison"}, FallbackModel},
		{"empty", nil, FallbackModel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SelectModel(tt.names))
		})
	}
}

package llm_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maooe/finance_control_app/internal/adapters/llm"
)

func TestGeminiClient_GenerateText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1beta/models/gemini-3-pro-preview:generateContent", r.URL.Path)
		require.Equal(t, "test-key", r.URL.Query().Get("key"))

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Contains(t, req, "contents")
		require.Contains(t, req, "generationConfig")

		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"Olá, "},{"text":"tudo bem."}]}}]}`))
	}))
	defer srv.Close()

	client := llm.NewGeminiClient("test-key", "gemini-3-pro-preview", 0.7, llm.WithBaseURL(srv.URL))

	answer, err := client.GenerateText(context.Background(), "pergunta")
	require.NoError(t, err)
	// Parts are concatenated in order.
	assert.Equal(t, "Olá, tudo bem.", answer)
}

func TestGeminiClient_MissingAPIKey(t *testing.T) {
	client := llm.NewGeminiClient("", "gemini-3-pro-preview", 0.7)

	_, err := client.GenerateText(context.Background(), "pergunta")
	assert.ErrorIs(t, err, llm.ErrNoAPIKey)
}

func TestGeminiClient_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := llm.NewGeminiClient("test-key", "gemini-3-pro-preview", 0.7, llm.WithBaseURL(srv.URL))

	_, err := client.GenerateText(context.Background(), "pergunta")
	assert.Error(t, err)
}

func TestGeminiClient_EmptyCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	client := llm.NewGeminiClient("test-key", "gemini-3-pro-preview", 0.7, llm.WithBaseURL(srv.URL))

	_, err := client.GenerateText(context.Background(), "pergunta")
	assert.Error(t, err)
}

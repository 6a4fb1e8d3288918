// Package llm implements the completion client behind the assistant bridge.
// It speaks the Gemini generateContent REST API directly; the assistant
// service owns prompt composition and failure degradation, this client only
// moves JSON.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	portsrepo "github.com/maooe/finance_control_app/internal/core/ports/repositories"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com"

// GeminiClient calls the Gemini generateContent endpoint.
type GeminiClient struct {
	apiKey      string
	model       string
	temperature float64
	baseURL     string
	httpClient  *http.Client
}

// GeminiClientOption is a functional option for configuring the client
type GeminiClientOption func(*GeminiClient)

// WithBaseURL overrides the API host. Used by tests.
func WithBaseURL(u string) GeminiClientOption {
	return func(c *GeminiClient) {
		c.baseURL = strings.TrimRight(u, "/")
	}
}

// WithGeminiHTTPClient overrides the underlying HTTP client.
func WithGeminiHTTPClient(hc *http.Client) GeminiClientOption {
	return func(c *GeminiClient) {
		c.httpClient = hc
	}
}

// NewGeminiClient creates a completion client for the given model.
func NewGeminiClient(apiKey, model string, temperature float64, options ...GeminiClientOption) *GeminiClient {
	client := &GeminiClient{
		apiKey:      apiKey,
		model:       model,
		temperature: temperature,
		baseURL:     defaultBaseURL,
		httpClient:  &http.Client{Timeout: 8 * time.Second},
	}

	for _, option := range options {
		option(client)
	}

	return client
}

// Ensure GeminiClient implements the CompletionClient interface
var _ portsrepo.CompletionClient = (*GeminiClient)(nil)

var ErrNoAPIKey = fmt.Errorf("gemini: api key not configured")

// Request/response wire shapes, limited to the fields this app touches.

type generateRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature float64 `json:"temperature"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// GenerateText sends the prompt and returns the concatenated candidate text.
func (c *GeminiClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", ErrNoAPIKey
	}

	body, err := json.Marshal(generateRequest{
		Contents:         []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: &generationConfig{Temperature: c.temperature},
	})
	if err != nil {
		return "", fmt.Errorf("gemini: marshal request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("gemini: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("gemini: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini: service answered %d", resp.StatusCode)
	}

	var parsed generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("gemini: parse response: %w", err)
	}
	if len(parsed.Candidates) == 0 {
		return "", fmt.Errorf("gemini: empty response")
	}

	var sb strings.Builder
	for _, p := range parsed.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	return sb.String(), nil
}

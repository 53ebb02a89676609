package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/recipeai/backend/config"
	"github.com/recipeai/backend/internal/prompt"
)

const (
	// Model and token limit are pinned server-side so clients cannot pick
	// a more expensive model through the proxy.
	anthropicModel     = "claude-sonnet-4-20250514"
	anthropicMaxTokens = 1500
	anthropicVersion   = "2023-06-01"
)

// ErrAPIKeyMissing is returned when no upstream credential is configured.
var ErrAPIKeyMissing = errors.New("ANTHROPIC_API_KEY is not configured")

// ChatRequest is the body accepted by the proxy. Only messages and an
// optional system prompt pass through; everything else is pinned.
type ChatRequest struct {
	Messages []prompt.Message `json:"messages"`
	System   string           `json:"system,omitempty"`
}

// ChatResult carries the upstream status code and raw body. Non-2xx
// responses are relayed to the caller as-is.
type ChatResult struct {
	StatusCode int
	Body       []byte
}

// LLMService relays chat requests to the Anthropic messages API. The API
// key stays on the server; callers never see it.
type LLMService struct {
	apiKey string
	apiURL string
	client *http.Client
}

// NewLLMService creates a new LLMService instance
func NewLLMService(cfg *config.Config) *LLMService {
	return &LLMService{
		apiKey: cfg.AnthropicAPIKey,
		apiURL: cfg.AnthropicAPIURL,
		client: &http.Client{Timeout: 60 * time.Second},
	}
}

type anthropicRequest struct {
	Model     string           `json:"model"`
	MaxTokens int              `json:"max_tokens"`
	System    string           `json:"system,omitempty"`
	Messages  []prompt.Message `json:"messages"`
}

// Chat forwards the request upstream and returns the upstream status and
// body verbatim. The key check happens before any network I/O.
func (s *LLMService) Chat(ctx context.Context, req *ChatRequest) (*ChatResult, error) {
	if s.apiKey == "" {
		return nil, ErrAPIKeyMissing
	}

	body, err := json.Marshal(anthropicRequest{
		Model:     anthropicModel,
		MaxTokens: anthropicMaxTokens,
		System:    req.System,
		Messages:  req.Messages,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", s.apiKey)
	httpReq.Header.Set("anthropic-version", anthropicVersion)

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to reach upstream API: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read upstream response: %w", err)
	}

	return &ChatResult{StatusCode: resp.StatusCode, Body: respBody}, nil
}

// Text extracts the assistant text from a successful messages API
// response body.
func Text(body []byte) (string, error) {
	var result struct {
		Content []struct {
			Text string `json:"text"`
		} `json:"content"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if len(result.Content) == 0 {
		return "", fmt.Errorf("no content in API response")
	}
	return result.Content[0].Text, nil
}

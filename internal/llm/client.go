// Package llm provides an OpenRouter chat-completions client
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// ErrNoChoices is returned when the provider answers successfully but without any choice
var ErrNoChoices = errors.New("no content generated by AI model")

// Config holds the provider endpoint and identification settings
type Config struct {
	APIKey  string
	Model   string
	BaseURL string
	Referer string
	Title   string
}

// Message is a single chat message
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// CompletionRequest describes one chat-completions call
//
// Penalties are omitted from the payload when nil.
type CompletionRequest struct {
	Messages         []Message
	Temperature      float64
	MaxTokens        int
	TopP             float64
	FrequencyPenalty *float64
	PresencePenalty  *float64
}

type completionPayload struct {
	Model            string    `json:"model"`
	Messages         []Message `json:"messages"`
	Temperature      float64   `json:"temperature"`
	MaxTokens        int       `json:"max_tokens"`
	TopP             float64   `json:"top_p"`
	FrequencyPenalty *float64  `json:"frequency_penalty,omitempty"`
	PresencePenalty  *float64  `json:"presence_penalty,omitempty"`
}

type completionResponse struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
}

const maxErrorBodyRunes = 4000

// HTTPError is returned for non-2xx provider responses
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	msg := strings.TrimSpace(e.Body)
	if msg == "" {
		msg = "<empty body>"
	}
	if runes := []rune(msg); len(runes) > maxErrorBodyRunes {
		msg = string(runes[:maxErrorBodyRunes]) + "..."
	}
	return fmt.Sprintf("API request failed: %d - %s", e.StatusCode, msg)
}

// Client calls the chat-completions endpoint
type Client struct {
	cfg        Config
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a new chat-completions client
//
// Per-call deadlines come from the context, the HTTP client only bounds runaway connections.
func NewClient(cfg Config, logger *zap.Logger) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 2 * time.Minute},
		logger:     logger,
	}
}

// Complete sends the request once and returns the content of the first choice
//
// Returns *HTTPError for non-2xx responses and ErrNoChoices for an empty choice list.
func (c *Client) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	payload := completionPayload{
		Model:            c.cfg.Model,
		Messages:         req.Messages,
		Temperature:      req.Temperature,
		MaxTokens:        req.MaxTokens,
		TopP:             req.TopP,
		FrequencyPenalty: req.FrequencyPenalty,
		PresencePenalty:  req.PresencePenalty,
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(payload); err != nil {
		return "", fmt.Errorf("failed to encode completion request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL, &buf)
	if err != nil {
		return "", fmt.Errorf("failed to create completion request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("HTTP-Referer", c.cfg.Referer)
	httpReq.Header.Set("X-Title", c.cfg.Title)

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("unexpected error: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("unexpected error: failed to read response: %w", err)
	}

	c.logger.Debug("chat completion finished",
		zap.String("model", c.cfg.Model),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &HTTPError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	var result completionResponse
	if err := json.Unmarshal(raw, &result); err != nil {
		return "", fmt.Errorf("unexpected error: invalid response body: %w", err)
	}
	if len(result.Choices) == 0 {
		return "", ErrNoChoices
	}

	return result.Choices[0].Message.Content, nil
}

package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/kailas-cloud/indexgen/internal/domain"
	"github.com/kailas-cloud/indexgen/internal/metrics"
)

const providerName = "openai"

// Completer is a JSON-mode chat completion provider using the OpenAI-compatible API.
type Completer struct {
	baseURL string
	logger  *zap.Logger
}

// Config holds the completion provider settings.
type Config struct {
	BaseURL string // empty uses the public OpenAI endpoint
	Logger  *zap.Logger
}

// NewCompleter creates an OpenAI-compatible completion provider.
// The API key travels with each request, so no client is held between calls.
func NewCompleter(cfg *Config) *Completer {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Completer{baseURL: cfg.BaseURL, logger: logger}
}

// Complete implements advisor.Completer. Returns the assistant message content.
func (c *Completer) Complete(ctx context.Context, req domain.CompletionRequest) (string, error) {
	clientCfg := openai.DefaultConfig(req.APIKey)
	if c.baseURL != "" {
		clientCfg.BaseURL = c.baseURL
	}
	client := openai.NewClientWithConfig(clientCfg)

	start := time.Now()

	resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: req.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: req.Prompt},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})

	duration := time.Since(start)

	if err != nil {
		metrics.AdvisorRequestsTotal.WithLabelValues(providerName, req.Model, "error").Inc()
		return "", parseAPIError(err)
	}

	if len(resp.Choices) == 0 {
		metrics.AdvisorRequestsTotal.WithLabelValues(providerName, req.Model, "error").Inc()
		return "", fmt.Errorf("empty completion response: %w", domain.ErrProviderError)
	}

	metrics.AdvisorRequestsTotal.WithLabelValues(providerName, req.Model, "success").Inc()
	metrics.AdvisorRequestDuration.WithLabelValues(providerName, req.Model).Observe(duration.Seconds())

	c.logger.Debug("OpenAI completion",
		zap.String("model", req.Model),
		zap.Int("prompt_tokens", resp.Usage.PromptTokens),
		zap.Int("completion_tokens", resp.Usage.CompletionTokens),
		zap.Duration("duration", duration),
	)

	return resp.Choices[0].Message.Content, nil
}

// parseAPIError extracts a human-readable error from the API response.
// All errors wrap domain.ErrProviderError.
func parseAPIError(err error) error {
	wrap := domain.ErrProviderError

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		if detail := extractDetail(reqErr.Body); detail != "" {
			return fmt.Errorf("completion API error %d: %s: %w", reqErr.HTTPStatusCode, detail, wrap)
		}
		return fmt.Errorf("completion API error %d: %s: %w", reqErr.HTTPStatusCode, string(reqErr.Body), wrap)
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("completion API error %d: %s: %w", apiErr.HTTPStatusCode, apiErr.Message, wrap)
	}

	return fmt.Errorf("completion request failed: %v: %w", err, wrap)
}

// extractDetail pulls the "detail" field some compatible gateways use for errors.
func extractDetail(body []byte) string {
	var parsed struct {
		Detail string `json:"detail"`
	}
	if json.Unmarshal(body, &parsed) == nil && parsed.Detail != "" {
		return parsed.Detail
	}
	return ""
}

// Package gemini implements the advisory completion provider on the Gemini API.
package gemini

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/kailas-cloud/indexgen/internal/domain"
	"github.com/kailas-cloud/indexgen/internal/metrics"
)

const (
	providerName = "gemini"
	jsonMIMEType = "application/json"
)

// Config holds the Gemini provider settings.
type Config struct {
	BaseURL    string       // empty uses the public endpoint
	HTTPClient *http.Client // nil uses the SDK default
	Logger     *zap.Logger
}

// Completer requests JSON-typed content from Gemini.
type Completer struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewCompleter creates a Gemini completion provider.
func NewCompleter(cfg *Config) *Completer {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Completer{baseURL: cfg.BaseURL, httpClient: cfg.HTTPClient, logger: logger}
}

// Complete implements advisor.Completer. A client is built per call because
// the credential is read fresh from the environment each time.
func (c *Completer) Complete(ctx context.Context, req domain.CompletionRequest) (string, error) {
	cc := &genai.ClientConfig{
		APIKey:     req.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: c.httpClient,
	}
	if c.baseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: c.baseURL}
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		metrics.AdvisorRequestsTotal.WithLabelValues(providerName, req.Model, "error").Inc()
		return "", fmt.Errorf("create gemini client: %v: %w", err, domain.ErrProviderError)
	}

	start := time.Now()

	resp, err := client.Models.GenerateContent(ctx, req.Model, genai.Text(req.Prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: jsonMIMEType,
	})

	duration := time.Since(start)

	if err != nil {
		metrics.AdvisorRequestsTotal.WithLabelValues(providerName, req.Model, "error").Inc()
		return "", fmt.Errorf("gemini generate content: %v: %w", err, domain.ErrProviderError)
	}

	metrics.AdvisorRequestsTotal.WithLabelValues(providerName, req.Model, "success").Inc()
	metrics.AdvisorRequestDuration.WithLabelValues(providerName, req.Model).Observe(duration.Seconds())

	text := strings.TrimSpace(resp.Text())
	c.logger.Debug("Gemini completion",
		zap.String("model", req.Model),
		zap.Int("response_bytes", len(text)),
		zap.Duration("duration", duration),
	)
	return text, nil
}

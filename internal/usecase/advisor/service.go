package advisor

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"

	"github.com/kailas-cloud/indexgen/internal/domain"
	"github.com/kailas-cloud/indexgen/internal/domain/suggestion"
	"github.com/kailas-cloud/indexgen/internal/metrics"
)

// DefaultModel is the completion model used when neither a model nor a known
// provider is configured.
const DefaultModel = "gemini-2.5-flash"

// Service runs advisory analyses. At most one analysis is in flight at a time.
type Service struct {
	completer  Completer
	credential CredentialSource
	provider   string
	model      string
	gate       *semaphore.Weighted
	logger     *zap.Logger
}

// New creates a Service. An empty model selects the provider's default model,
// or DefaultModel for an unknown provider.
func New(completer Completer, credential CredentialSource, provider, model string, logger *zap.Logger) *Service {
	if model == "" {
		model = domain.DefaultModel(provider)
	}
	if model == "" {
		model = DefaultModel
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		completer:  completer,
		credential: credential,
		provider:   provider,
		model:      model,
		gate:       semaphore.NewWeighted(1),
		logger:     logger,
	}
}

// Model returns the completion model identifier.
func (s *Service) Model() string { return s.model }

// Configured reports whether a credential is currently available.
func (s *Service) Configured() bool {
	return s.credential != nil && strings.TrimSpace(s.credential()) != ""
}

// Analyze asks the provider for schema optimizations.
//
// A missing credential returns domain.ErrMissingCredential before any network
// call, and a concurrent call returns domain.ErrAnalysisInProgress. Every
// provider or decoding failure is swallowed and answered with
// suggestion.Fallback() and a nil error.
func (s *Service) Analyze(ctx context.Context, req suggestion.Request) ([]suggestion.Suggestion, error) {
	if !s.Configured() {
		return nil, fmt.Errorf("analyze: %w", domain.ErrMissingCredential)
	}
	if !s.gate.TryAcquire(1) {
		return nil, fmt.Errorf("analyze: %w", domain.ErrAnalysisInProgress)
	}
	defer s.gate.Release(1)

	start := time.Now()
	body, err := s.completer.Complete(ctx, domain.CompletionRequest{
		APIKey: strings.TrimSpace(s.credential()),
		Model:  s.model,
		Prompt: BuildPrompt(req),
	})
	if err != nil {
		s.logger.Warn("Advisor request failed",
			zap.String("provider", s.provider),
			zap.String("model", s.model),
			zap.Duration("duration", time.Since(start)),
			zap.Error(err),
		)
		metrics.AdvisorFallbacksTotal.Inc()
		return suggestion.Fallback(), nil
	}

	out, err := ParseSuggestions(body)
	if err != nil {
		s.logger.Warn("Advisor response could not be decoded",
			zap.String("provider", s.provider),
			zap.String("model", s.model),
			zap.Int("body_bytes", len(body)),
			zap.Error(err),
		)
		metrics.AdvisorFallbacksTotal.Inc()
		return suggestion.Fallback(), nil
	}

	s.logger.Debug("Advisor analysis complete",
		zap.String("provider", s.provider),
		zap.Int("suggestions", len(out)),
		zap.Duration("duration", time.Since(start)),
	)
	return out, nil
}

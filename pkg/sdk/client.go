package indexgen

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/kailas-cloud/indexgen/internal/domain"
	domart "github.com/kailas-cloud/indexgen/internal/domain/artifact"
	"github.com/kailas-cloud/indexgen/internal/domain/generator"
	"github.com/kailas-cloud/indexgen/internal/domain/suggestion"
	settingsrepo "github.com/kailas-cloud/indexgen/internal/repository/settings"
	"github.com/kailas-cloud/indexgen/internal/transport/gemini"
	"github.com/kailas-cloud/indexgen/internal/transport/openai"
	advisoruc "github.com/kailas-cloud/indexgen/internal/usecase/advisor"
	artifactuc "github.com/kailas-cloud/indexgen/internal/usecase/artifact"
	healthuc "github.com/kailas-cloud/indexgen/internal/usecase/health"
	settingsuc "github.com/kailas-cloud/indexgen/internal/usecase/settings"
)

const defaultCredentialEnv = "API_KEY"

// Client is the indexgen SDK entry point. It is safe for concurrent use;
// at most one analysis runs at a time.
type Client struct {
	settings  *settingsuc.Service
	artifacts *artifactuc.Service
	advisor   *advisoruc.Service
	health    *healthuc.Service
	initial   generator.Config
	obs       *observer
}

// New creates a Client. The configuration passed with WithConfig is validated
// the same way a patch is.
func New(opts ...Option) (*Client, error) {
	cfg := &clientConfig{provider: domain.ProviderGemini}
	for _, o := range opts {
		o.apply(cfg)
	}

	initial, err := toInternalConfig(cfg.config)
	if err != nil {
		return nil, fmt.Errorf("indexgen: %w", err)
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		return nil, err
	}

	credential := cfg.credential
	if credential == nil {
		credential = advisoruc.EnvCredential(defaultCredentialEnv)
	}

	settings := settingsuc.New(settingsrepo.New(initial))
	model := cfg.model
	if model == "" {
		model = domain.DefaultModel(cfg.provider)
	}
	advisor := advisoruc.New(buildCompleter(cfg), credential, cfg.provider, model, nil)

	return &Client{
		settings:  settings,
		artifacts: artifactuc.New(settings),
		advisor:   advisor,
		health:    healthuc.New(advisor),
		initial:   initial,
		obs:       obs,
	}, nil
}

func buildCompleter(cfg *clientConfig) advisoruc.Completer {
	if cfg.completer != nil {
		return &completerAdapter{inner: cfg.completer}
	}
	if cfg.provider == domain.ProviderOpenAI {
		return openai.NewCompleter(&openai.Config{BaseURL: cfg.baseURL})
	}
	return gemini.NewCompleter(&gemini.Config{BaseURL: cfg.baseURL})
}

// Config returns the current configuration.
func (c *Client) Config() Config {
	return fromInternalConfig(c.settings.Get())
}

// Update applies a partial update and returns the new configuration.
// Errors wrap ErrInvalidPatch and leave the configuration unchanged.
func (c *Client) Update(p Patch) (cfg Config, err error) {
	start := time.Now()
	defer func() { c.obs.observe("config.update", start, err) }()

	raw, err := json.Marshal(p)
	if err != nil {
		return Config{}, fmt.Errorf("encode patch: %w", err)
	}
	next, err := c.settings.Patch(raw)
	if err != nil {
		return c.Config(), fmt.Errorf("update: %w", err)
	}
	return fromInternalConfig(next), nil
}

// Reset restores the configuration the client was created with.
func (c *Client) Reset() Config {
	return fromInternalConfig(c.settings.Reset(c.initial))
}

// Artifacts renders every artifact for the current configuration.
func (c *Client) Artifacts() []Artifact {
	start := time.Now()
	defer func() { c.obs.observe("artifact.list", start, nil) }()

	items := c.artifacts.List()
	out := make([]Artifact, len(items))
	for i, a := range items {
		out[i] = fromInternalArtifact(a)
	}
	return out
}

// Artifact renders one artifact. Unknown names return ErrUnknownArtifact.
func (c *Client) Artifact(name ArtifactName) (a Artifact, err error) {
	start := time.Now()
	defer func() { c.obs.observe("artifact.get", start, err) }()

	got, err := c.artifacts.Get(domart.Name(name))
	if err != nil {
		return Artifact{}, fmt.Errorf("artifact: %w", err)
	}
	return fromInternalArtifact(got), nil
}

// Analyze asks the advisor for schema optimizations. Provider failures are
// reported as a single placeholder suggestion, not as an error.
func (c *Client) Analyze(ctx context.Context, req AnalyzeRequest) (out []Suggestion, err error) {
	start := time.Now()
	defer func() { c.obs.observe("advisor.analyze", start, err) }()

	if req.CollectionName == "" {
		req.CollectionName = c.settings.Get().CollectionName
	}
	items, err := c.advisor.Analyze(ctx, suggestion.Request{
		ProjectDescription: req.ProjectDescription,
		CollectionName:     req.CollectionName,
		ExistingSchema:     req.ExistingSchema,
	})
	if err != nil {
		return nil, fmt.Errorf("analyze: %w", err)
	}

	out = make([]Suggestion, len(items))
	for i, s := range items {
		out[i] = Suggestion{Title: s.Title, Reasoning: s.Reasoning}
	}
	return out, nil
}

// Health reports whether the advisor has a credential.
func (c *Client) Health() HealthStatus {
	report := c.health.Check()
	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}
	return HealthStatus{Status: string(report.Status), Checks: checks}
}

// completerAdapter wraps a public Completer to satisfy advisor.Completer.
type completerAdapter struct {
	inner Completer
}

func (a *completerAdapter) Complete(ctx context.Context, req domain.CompletionRequest) (string, error) {
	body, err := a.inner.Complete(ctx, CompletionRequest{
		APIKey: req.APIKey,
		Model:  req.Model,
		Prompt: req.Prompt,
	})
	if err != nil {
		return "", fmt.Errorf("complete: %w", err)
	}
	return body, nil
}

func toInternalConfig(c Config) (generator.Config, error) {
	out := generator.Default()
	if c.ServiceURL != "" {
		out = out.WithServiceURL(c.ServiceURL)
	}
	if c.CollectionName != "" {
		out = out.WithCollectionName(c.CollectionName)
	}
	if c.EmbeddingModel != "" {
		out = out.WithEmbeddingModel(c.EmbeddingModel)
	}
	out = out.WithAPIKey(c.APIKey)

	var err error
	if c.Distance != "" {
		d, perr := generator.ParseDistance(string(c.Distance))
		if perr != nil {
			return generator.Config{}, fmt.Errorf("%w: %v", domain.ErrInvalidPatch, perr)
		}
		if out, err = out.WithDistance(d); err != nil {
			return generator.Config{}, fmt.Errorf("%w: %v", domain.ErrInvalidPatch, err)
		}
	}
	if c.ChunkSize != 0 {
		if out, err = out.WithChunkSize(c.ChunkSize); err != nil {
			return generator.Config{}, fmt.Errorf("%w: %v", domain.ErrInvalidPatch, err)
		}
	}
	return out, nil
}

func fromInternalConfig(c generator.Config) Config {
	return Config{
		ServiceURL:     c.ServiceURL,
		CollectionName: c.CollectionName,
		EmbeddingModel: c.EmbeddingModel,
		Distance:       Distance(c.Distance),
		ChunkSize:      c.ChunkSize,
		APIKey:         c.APIKey,
	}
}

func fromInternalArtifact(a domart.Artifact) Artifact {
	return Artifact{Name: ArtifactName(a.Name), FileName: a.FileName, Content: a.Content}
}

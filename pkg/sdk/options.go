package indexgen

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/kailas-cloud/indexgen/internal/domain"
)

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type clientConfig struct {
	config Config

	provider   string // domain.ProviderGemini or domain.ProviderOpenAI
	baseURL    string
	completer  Completer
	model      string
	credential func() string

	logger     *slog.Logger
	metricsReg prometheus.Registerer
}

// WithConfig sets the initial generator configuration.
func WithConfig(cfg Config) Option {
	return optionFunc(func(c *clientConfig) {
		c.config = cfg
	})
}

// WithGemini uses the Gemini API for analysis (default).
// An empty baseURL selects the public endpoint.
func WithGemini(baseURL string) Option {
	return optionFunc(func(c *clientConfig) {
		c.provider = domain.ProviderGemini
		c.baseURL = baseURL
	})
}

// WithOpenAI uses an OpenAI-compatible chat completion endpoint for analysis.
func WithOpenAI(baseURL string) Option {
	return optionFunc(func(c *clientConfig) {
		c.provider = domain.ProviderOpenAI
		c.baseURL = baseURL
	})
}

// WithCompleter sets a custom completion provider. Overrides WithGemini and WithOpenAI.
func WithCompleter(comp Completer) Option {
	return optionFunc(func(c *clientConfig) {
		c.completer = comp
	})
}

// WithModel sets the completion model. The default depends on the provider:
// gemini-2.5-flash for Gemini, gpt-4o-mini for OpenAI.
func WithModel(model string) Option {
	return optionFunc(func(c *clientConfig) {
		c.model = model
	})
}

// WithCredential sets the advisor credential source. It is called on every
// analysis. Default: the API_KEY environment variable.
func WithCredential(fn func() string) Option {
	return optionFunc(func(c *clientConfig) {
		c.credential = fn
	})
}

// WithLogger enables structured logging for SDK operations.
// Pass nil to disable (default). Uses standard library slog.
func WithLogger(l *slog.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		c.logger = l
	})
}

// WithPrometheus registers SDK metrics (operation counts and durations)
// on the given registerer. Pass nil to disable (default).
func WithPrometheus(reg prometheus.Registerer) Option {
	return optionFunc(func(c *clientConfig) {
		c.metricsReg = reg
	})
}

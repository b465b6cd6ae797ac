package config

import (
	"strings"
	"testing"

	"github.com/kailas-cloud/indexgen/internal/domain/generator"
)

func TestValidate_InvalidProvider(t *testing.T) {
	cfg := Config{Advisor: AdvisorConfig{Provider: "claude"}}
	cfg.ApplyDefaults()

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for invalid provider")
	}

	expected := `advisor.provider must be "gemini" or "openai", got "claude"`
	if err.Error() != expected {
		t.Errorf("unexpected error message:\ngot:  %q\nwant: %q", err.Error(), expected)
	}
}

func TestValidate_ValidProviders(t *testing.T) {
	for _, p := range []string{"gemini", "openai"} {
		t.Run("provider="+p, func(t *testing.T) {
			cfg := Config{Advisor: AdvisorConfig{Provider: p}}
			cfg.ApplyDefaults()
			if err := cfg.Validate(); err != nil {
				t.Fatalf("unexpected error for provider %q: %v", p, err)
			}
		})
	}
}

func TestApplyDefaults_ModelPerProvider(t *testing.T) {
	cfg := Config{Advisor: AdvisorConfig{Provider: "openai"}}
	cfg.ApplyDefaults()

	if cfg.Advisor.Model != "gpt-4o-mini" {
		t.Errorf("expected Model=gpt-4o-mini, got %q", cfg.Advisor.Model)
	}
}

func TestValidate_InvalidPort(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()
	cfg.HTTP.Port = 70000

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for invalid port")
	}
}

func TestValidate_InvalidGenerator(t *testing.T) {
	tests := map[string]GeneratorConfig{
		"distance":   {DistanceMetric: "Manhattan"},
		"chunk size": {ChunkSize: -1},
	}
	for name, g := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := Config{Generator: g}
			cfg.ApplyDefaults()
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.HasPrefix(err.Error(), "generator: ") {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.HTTP.Port != 8080 {
		t.Errorf("expected Port=8080, got %d", cfg.HTTP.Port)
	}
	if cfg.HTTP.ReadTimeoutSec != 10 {
		t.Errorf("expected ReadTimeoutSec=10, got %d", cfg.HTTP.ReadTimeoutSec)
	}
	if cfg.HTTP.WriteTimeoutSec != 60 {
		t.Errorf("expected WriteTimeoutSec=60, got %d", cfg.HTTP.WriteTimeoutSec)
	}
	if cfg.HTTP.ShutdownSec != 10 {
		t.Errorf("expected ShutdownSec=10, got %d", cfg.HTTP.ShutdownSec)
	}
	if cfg.Advisor.Provider != "gemini" {
		t.Errorf("expected Provider=gemini, got %q", cfg.Advisor.Provider)
	}
	if cfg.Advisor.Model != "gemini-2.5-flash" {
		t.Errorf("expected Model=gemini-2.5-flash, got %q", cfg.Advisor.Model)
	}
	if cfg.Advisor.APIKeyEnv != "API_KEY" {
		t.Errorf("expected APIKeyEnv=API_KEY, got %q", cfg.Advisor.APIKeyEnv)
	}

	initial, err := cfg.Generator.Initial()
	if err != nil {
		t.Fatalf("Initial() error: %v", err)
	}
	if initial != generator.Default() {
		t.Errorf("Initial() = %+v, want defaults", initial)
	}
}

func TestApplyDefaults_NoOverride(t *testing.T) {
	cfg := Config{
		HTTP:    HTTPConfig{Port: 9000, ReadTimeoutSec: 30, WriteTimeoutSec: 90, ShutdownSec: 5},
		Advisor: AdvisorConfig{Provider: "openai", APIKeyEnv: "OPENAI_API_KEY", Model: "gpt-4o-mini"},
		Generator: GeneratorConfig{
			ServiceURL:     "http://qdrant:7000",
			DistanceMetric: "Euclidean",
			ChunkSize:      200,
		},
	}
	cfg.ApplyDefaults()

	if cfg.HTTP.Port != 9000 || cfg.HTTP.ReadTimeoutSec != 30 || cfg.HTTP.WriteTimeoutSec != 90 {
		t.Errorf("http overridden: %+v", cfg.HTTP)
	}
	if cfg.Advisor.Provider != "openai" || cfg.Advisor.APIKeyEnv != "OPENAI_API_KEY" || cfg.Advisor.Model != "gpt-4o-mini" {
		t.Errorf("advisor overridden: %+v", cfg.Advisor)
	}

	initial, err := cfg.Generator.Initial()
	if err != nil {
		t.Fatalf("Initial() error: %v", err)
	}
	if initial.ServiceURL != "http://qdrant:7000" || initial.Distance != generator.Euclid || initial.ChunkSize != 200 {
		t.Errorf("unexpected initial config: %+v", initial)
	}
	if initial.CollectionName != generator.DefaultCollectionName {
		t.Errorf("CollectionName = %q", initial.CollectionName)
	}
}

func TestParse_ExpandsEnvVars(t *testing.T) {
	t.Setenv("INDEXGEN_TEST_PORT", "9191")

	cfg, err := Parse([]byte(`
http:
  port: ${INDEXGEN_TEST_PORT}
advisor:
  model: ${INDEXGEN_TEST_MODEL:-gemini-2.5-flash}
generator:
  collection_name: unity_docs
`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.HTTP.Port != 9191 {
		t.Errorf("Port = %d, want 9191", cfg.HTTP.Port)
	}
	if cfg.Advisor.Model != "gemini-2.5-flash" {
		t.Errorf("Model = %q", cfg.Advisor.Model)
	}
	if cfg.Generator.CollectionName != "unity_docs" {
		t.Errorf("CollectionName = %q", cfg.Generator.CollectionName)
	}
}

func TestParse_InvalidYAML(t *testing.T) {
	if _, err := Parse([]byte("http: [unclosed")); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestParse_AuthKeys(t *testing.T) {
	t.Setenv("INDEXGEN_TEST_TOKEN", "s3cret")

	cfg, err := Parse([]byte(`
auth:
  api_keys:
    - ${INDEXGEN_TEST_TOKEN}
    - static
`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(cfg.Auth.APIKeys) != 2 || cfg.Auth.APIKeys[0] != "s3cret" {
		t.Errorf("unexpected api keys: %v", cfg.Auth.APIKeys)
	}
}

func TestParse_EmptyModelEnvPicksProviderDefault(t *testing.T) {
	cfg, err := Parse([]byte(`
advisor:
  provider: openai
  model: ${INDEXGEN_TEST_UNSET_MODEL:-}
`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.Advisor.Model != "gpt-4o-mini" {
		t.Errorf("Model = %q, want gpt-4o-mini", cfg.Advisor.Model)
	}
}

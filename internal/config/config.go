package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kailas-cloud/indexgen/internal/domain"
	"github.com/kailas-cloud/indexgen/internal/domain/generator"
)

// Config holds the indexgen server configuration.
type Config struct {
	HTTP      HTTPConfig      `yaml:"http"`
	Advisor   AdvisorConfig   `yaml:"advisor"`
	Generator GeneratorConfig `yaml:"generator"`
	Auth      AuthConfig      `yaml:"auth"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// AuthConfig holds optional bearer-token protection for the /api routes.
type AuthConfig struct {
	APIKeys []string `yaml:"api_keys"` // empty = auth disabled
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error (default: determined by env)
}

// HTTPConfig holds HTTP server settings.
type HTTPConfig struct {
	Port            int `yaml:"port"`
	ReadTimeoutSec  int `yaml:"read_timeout_sec"`
	WriteTimeoutSec int `yaml:"write_timeout_sec"`
	ShutdownSec     int `yaml:"shutdown_timeout_sec"`
}

// AdvisorConfig holds the schema advisor settings. The credential itself is
// never stored here: it is read from the APIKeyEnv variable on every call.
type AdvisorConfig struct {
	Provider  string `yaml:"provider"` // gemini, openai (default: gemini)
	Model     string `yaml:"model"`
	APIKeyEnv string `yaml:"api_key_env"`
	BaseURL   string `yaml:"base_url"`
}

// GeneratorConfig seeds the in-memory generator configuration at startup.
type GeneratorConfig struct {
	ServiceURL     string `yaml:"service_url"`
	CollectionName string `yaml:"collection_name"`
	EmbeddingModel string `yaml:"embedding_model"`
	DistanceMetric string `yaml:"distance_metric"`
	ChunkSize      int    `yaml:"chunk_size"`
}

// Load reads configuration from a YAML file by environment name (local, dev, prod).
func Load(env string) (Config, error) {
	configPath := findConfigPath(env)

	data, err := os.ReadFile(filepath.Clean(configPath))
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", configPath, err)
	}

	return Parse(data)
}

// Parse decodes YAML configuration, expanding ${VAR} references first.
func Parse(data []byte) (Config, error) {
	data = expandEnvVars(data)

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// GetEnv returns the current environment from the ENV variable, defaulting to "local".
func GetEnv() string {
	if env := os.Getenv("ENV"); env != "" {
		return env
	}
	return "local"
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	if c.HTTP.Port == 0 {
		c.HTTP.Port = 8080
	}
	if c.HTTP.ReadTimeoutSec <= 0 {
		c.HTTP.ReadTimeoutSec = 10
	}
	// advisory calls can take a while; keep the write deadline above them
	if c.HTTP.WriteTimeoutSec <= 0 {
		c.HTTP.WriteTimeoutSec = 60
	}
	if c.HTTP.ShutdownSec <= 0 {
		c.HTTP.ShutdownSec = 10
	}
	if c.Advisor.Provider == "" {
		c.Advisor.Provider = domain.ProviderGemini
	}
	if c.Advisor.Model == "" {
		c.Advisor.Model = domain.DefaultModel(c.Advisor.Provider)
	}
	if c.Advisor.APIKeyEnv == "" {
		c.Advisor.APIKeyEnv = "API_KEY"
	}

	def := generator.Default()
	if c.Generator.ServiceURL == "" {
		c.Generator.ServiceURL = def.ServiceURL
	}
	if c.Generator.CollectionName == "" {
		c.Generator.CollectionName = def.CollectionName
	}
	if c.Generator.EmbeddingModel == "" {
		c.Generator.EmbeddingModel = def.EmbeddingModel
	}
	if c.Generator.DistanceMetric == "" {
		c.Generator.DistanceMetric = string(def.Distance)
	}
	if c.Generator.ChunkSize == 0 {
		c.Generator.ChunkSize = def.ChunkSize
	}
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("http.port must be between 1 and 65535, got %d", c.HTTP.Port)
	}
	if !domain.IsKnownProvider(c.Advisor.Provider) {
		return fmt.Errorf("advisor.provider must be \"gemini\" or \"openai\", got %q", c.Advisor.Provider)
	}
	if _, err := c.Generator.Initial(); err != nil {
		return fmt.Errorf("generator: %w", err)
	}
	return nil
}

// Initial converts the generator section into the startup configuration.
func (g GeneratorConfig) Initial() (generator.Config, error) {
	d, err := generator.ParseDistance(g.DistanceMetric)
	if err != nil {
		return generator.Config{}, err
	}
	cfg := generator.Default().
		WithServiceURL(g.ServiceURL).
		WithCollectionName(g.CollectionName).
		WithEmbeddingModel(g.EmbeddingModel)
	if cfg, err = cfg.WithDistance(d); err != nil {
		return generator.Config{}, err
	}
	return cfg.WithChunkSize(g.ChunkSize)
}

// findConfigPath locates the config file.
func findConfigPath(env string) string {
	filename := fmt.Sprintf("%s.yaml", env)

	// 1. Check ./config/
	if path := filepath.Join("config", filename); fileExists(path) {
		return path
	}

	// 2. Check relative to the source file
	_, b, _, _ := runtime.Caller(0)
	projectRoot := filepath.Dir(filepath.Dir(filepath.Dir(b))) // internal/config -> project root
	if path := filepath.Join(projectRoot, "config", filename); fileExists(path) {
		return path
	}

	// 3. Fallback to ./config/
	return filepath.Join("config", filename)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// expandEnvVars replaces ${VAR} and ${VAR:-default} with environment variable values.
var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := string(match[2 : len(match)-1]) // strip ${ and }
		varName, defaultVal, hasDefault := strings.Cut(expr, ":-")
		val := os.Getenv(varName)
		if val == "" && hasDefault {
			val = defaultVal
		}
		return []byte(val)
	})
}

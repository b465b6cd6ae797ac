// Package generator holds the configuration the artifact generators render from.
package generator

import "fmt"

// Defaults used at process start.
const (
	DefaultServiceURL     = "http://localhost:6333"
	DefaultCollectionName = "unity_code_graph"
	DefaultEmbeddingModel = "text-embedding-004"
	DefaultDistance       = Cosine
	DefaultChunkSize      = 1000
)

// Config is the generator configuration. All fields are plain scalars.
// ChunkSize is carried through to the script as a constant and drives nothing else.
type Config struct {
	ServiceURL     string
	CollectionName string
	EmbeddingModel string
	Distance       Distance
	ChunkSize      int
	APIKey         string
}

// Default returns the initial configuration.
func Default() Config {
	return Config{
		ServiceURL:     DefaultServiceURL,
		CollectionName: DefaultCollectionName,
		EmbeddingModel: DefaultEmbeddingModel,
		Distance:       DefaultDistance,
		ChunkSize:      DefaultChunkSize,
	}
}

// WithServiceURL returns a copy with the service URL replaced.
func (c Config) WithServiceURL(v string) Config { c.ServiceURL = v; return c }

// WithCollectionName returns a copy with the collection name replaced.
func (c Config) WithCollectionName(v string) Config { c.CollectionName = v; return c }

// WithEmbeddingModel returns a copy with the embedding model replaced.
func (c Config) WithEmbeddingModel(v string) Config { c.EmbeddingModel = v; return c }

// WithAPIKey returns a copy with the API key replaced.
func (c Config) WithAPIKey(v string) Config { c.APIKey = v; return c }

// WithDistance returns a copy with the distance replaced.
func (c Config) WithDistance(d Distance) (Config, error) {
	if !d.IsValid() {
		return c, fmt.Errorf("unsupported distance metric %q", d)
	}
	c.Distance = d
	return c, nil
}

// WithChunkSize returns a copy with the chunk size replaced. n must be positive.
func (c Config) WithChunkSize(n int) (Config, error) {
	if n <= 0 {
		return c, fmt.Errorf("chunk size must be positive, got %d", n)
	}
	c.ChunkSize = n
	return c, nil
}

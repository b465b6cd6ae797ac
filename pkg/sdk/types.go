package indexgen

import "context"

// Distance is the vector similarity metric written into the generated script.
type Distance string

// Distance constants. Values are the Qdrant wire names.
const (
	DistanceCosine Distance = "Cosine"
	DistanceEuclid Distance = "Euclid"
	DistanceDot    Distance = "Dot"
)

// Config is the generator configuration. Zero fields take the defaults.
type Config struct {
	ServiceURL     string
	CollectionName string
	EmbeddingModel string
	Distance       Distance
	ChunkSize      int
	APIKey         string
}

// Patch is a partial configuration update. Nil fields are left unchanged.
type Patch struct {
	ServiceURL     *string   `json:"serviceUrl,omitempty"`
	CollectionName *string   `json:"collectionName,omitempty"`
	EmbeddingModel *string   `json:"embeddingModel,omitempty"`
	Distance       *Distance `json:"distanceMetric,omitempty"`
	ChunkSize      *int      `json:"chunkSize,omitempty"`
	APIKey         *string   `json:"apiKey,omitempty"`
}

// ArtifactName identifies a generated artifact.
type ArtifactName string

// Artifact names.
const (
	ArtifactScript  ArtifactName = "script"
	ArtifactCompose ArtifactName = "compose"
)

// Artifact is a rendered file.
type Artifact struct {
	Name     ArtifactName
	FileName string
	Content  string
}

// AnalyzeRequest describes the project to analyze. CollectionName defaults
// to the current configuration.
type AnalyzeRequest struct {
	ProjectDescription string
	CollectionName     string
	ExistingSchema     string
}

// Suggestion is one schema optimization proposed by the advisor.
type Suggestion struct {
	Title     string
	Reasoning string
}

// CompletionRequest is a single JSON completion call.
type CompletionRequest struct {
	APIKey string
	Model  string
	Prompt string
}

// Completer sends a prompt to a generative model and returns the raw JSON reply.
type Completer interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// HealthStatus represents the aggregated client health.
type HealthStatus struct {
	Status string            // "ok", "degraded"
	Checks map[string]string // component → "ok"/"error"
}

package chi

import (
	domart "github.com/kailas-cloud/indexgen/internal/domain/artifact"
	"github.com/kailas-cloud/indexgen/internal/domain/generator"
	"github.com/kailas-cloud/indexgen/internal/domain/suggestion"
	healthuc "github.com/kailas-cloud/indexgen/internal/usecase/health"
)

// ErrorCode is the machine-readable error code of an API error.
type ErrorCode string

// API error codes.
const (
	CodeBadRequest          ErrorCode = "bad_request"
	CodeValidationFailed    ErrorCode = "validation_failed"
	CodeUnauthorized        ErrorCode = "unauthorized"
	CodeArtifactNotFound    ErrorCode = "artifact_not_found"
	CodeAdvisorUnconfigured ErrorCode = "advisor_unconfigured"
	CodeAnalysisInProgress  ErrorCode = "analysis_in_progress"
	CodeInternalError       ErrorCode = "internal_error"
)

// ErrorResponse is the JSON body of every API error.
type ErrorResponse struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// ConfigResponse mirrors the generator configuration.
type ConfigResponse struct {
	ServiceURL     string `json:"serviceUrl"`
	CollectionName string `json:"collectionName"`
	EmbeddingModel string `json:"embeddingModel"`
	DistanceMetric string `json:"distanceMetric"`
	DistanceLabel  string `json:"distanceLabel"`
	ChunkSize      int    `json:"chunkSize"`
	APIKey         string `json:"apiKey"`
}

// ArtifactResponse is one rendered artifact.
type ArtifactResponse struct {
	Name     string `json:"name"`
	FileName string `json:"fileName"`
	Content  string `json:"content"`
}

// ArtifactListResponse lists every artifact for the current configuration.
type ArtifactListResponse struct {
	Artifacts []ArtifactResponse `json:"artifacts"`
}

// AnalyzeRequest is the body of POST /api/advisor/analyze.
type AnalyzeRequest struct {
	ProjectDescription string `json:"projectDescription"`
	ExistingSchema     string `json:"existingSchema"`
}

// SuggestionResponse is one advisory suggestion.
type SuggestionResponse struct {
	Title     string `json:"title"`
	Reasoning string `json:"reasoning"`
}

// AnalyzeResponse wraps the suggestions returned by the advisor.
type AnalyzeResponse struct {
	Suggestions []SuggestionResponse `json:"suggestions"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

func configToResponse(c generator.Config) ConfigResponse {
	return ConfigResponse{
		ServiceURL:     c.ServiceURL,
		CollectionName: c.CollectionName,
		EmbeddingModel: c.EmbeddingModel,
		DistanceMetric: string(c.Distance),
		DistanceLabel:  c.Distance.Label(),
		ChunkSize:      c.ChunkSize,
		APIKey:         c.APIKey,
	}
}

func artifactToResponse(a domart.Artifact) ArtifactResponse {
	return ArtifactResponse{
		Name:     string(a.Name),
		FileName: a.FileName,
		Content:  a.Content,
	}
}

func suggestionsToResponse(items []suggestion.Suggestion) AnalyzeResponse {
	out := make([]SuggestionResponse, len(items))
	for i, s := range items {
		out[i] = SuggestionResponse{Title: s.Title, Reasoning: s.Reasoning}
	}
	return AnalyzeResponse{Suggestions: out}
}

func healthToResponse(r healthuc.Report) HealthResponse {
	checks := make(map[string]string, len(r.Checks))
	for k, v := range r.Checks {
		checks[k] = string(v)
	}
	return HealthResponse{Status: string(r.Status), Checks: checks}
}

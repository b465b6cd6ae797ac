package indexgen

import "github.com/kailas-cloud/indexgen/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrMissingCredential  = domain.ErrMissingCredential
	ErrInvalidPatch       = domain.ErrInvalidPatch
	ErrUnknownArtifact    = domain.ErrUnknownArtifact
	ErrAnalysisInProgress = domain.ErrAnalysisInProgress
	ErrProviderError      = domain.ErrProviderError
)

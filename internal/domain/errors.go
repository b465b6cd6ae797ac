package domain

import "errors"

var (
	// ErrMissingCredential signals that no AI credential is present in the environment.
	ErrMissingCredential = errors.New("advisor credential not configured")
	// ErrInvalidPatch signals a rejected configuration update.
	ErrInvalidPatch = errors.New("invalid configuration patch")
	// ErrUnknownArtifact signals a request for an artifact that is not generated.
	ErrUnknownArtifact = errors.New("unknown artifact")
	// ErrAnalysisInProgress signals that an advisory request is already pending.
	ErrAnalysisInProgress = errors.New("analysis already in progress")
	// ErrProviderError signals a completion provider failure.
	ErrProviderError = errors.New("completion provider error")
)

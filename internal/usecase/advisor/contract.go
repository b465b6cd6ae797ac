package advisor

import (
	"context"
	"os"

	"github.com/kailas-cloud/indexgen/internal/domain"
)

// Completer sends a prompt and returns the raw JSON text of the reply.
type Completer interface {
	Complete(ctx context.Context, req domain.CompletionRequest) (string, error)
}

// CredentialSource returns the current API credential, or "" if none is set.
type CredentialSource func() string

// EnvCredential reads the credential from the named environment variable on every call.
func EnvCredential(name string) CredentialSource {
	return func() string { return os.Getenv(name) }
}

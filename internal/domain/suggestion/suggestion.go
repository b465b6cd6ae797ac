// Package suggestion holds advisory request and response types.
package suggestion

// Fallback text returned in place of suggestions when the provider call fails.
const (
	FallbackTitle     = "Error"
	FallbackReasoning = "Could not retrieve suggestions. Ensure API Key is valid."
)

// Suggestion is one schema or indexing recommendation.
type Suggestion struct {
	Title     string
	Reasoning string
}

// Request is the input to an advisory analysis. ExistingSchema is optional.
type Request struct {
	ProjectDescription string
	CollectionName     string
	ExistingSchema     string
}

// HasSchema reports whether an existing schema was supplied.
func (r Request) HasSchema() bool { return r.ExistingSchema != "" }

// Fallback returns the single-entry list shown when analysis fails.
func Fallback() []Suggestion {
	return []Suggestion{{Title: FallbackTitle, Reasoning: FallbackReasoning}}
}

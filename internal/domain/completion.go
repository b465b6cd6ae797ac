package domain

// CompletionRequest is one JSON-mode completion call to a generative-AI provider.
type CompletionRequest struct {
	APIKey string
	Model  string
	Prompt string
}

// Completion provider names.
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

var defaultModels = map[string]string{
	ProviderGemini: "gemini-2.5-flash",
	ProviderOpenAI: "gpt-4o-mini",
}

// DefaultModel returns the model used for provider when none is configured.
// Unknown providers return "".
func DefaultModel(provider string) string {
	return defaultModels[provider]
}

// IsKnownProvider reports whether provider names a supported completion provider.
func IsKnownProvider(provider string) bool {
	_, ok := defaultModels[provider]
	return ok
}

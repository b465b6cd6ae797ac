package advisor

import (
	"fmt"
	"strings"

	"github.com/kailas-cloud/indexgen/internal/domain/suggestion"
)

// SuggestionCount is how many optimizations the prompt asks for.
const SuggestionCount = 3

// BuildPrompt renders the advisory prompt for req.
func BuildPrompt(req suggestion.Request) string {
	var b strings.Builder

	b.WriteString("You are an expert in Vector Database schemas and Unity Game Development.\n\n")
	b.WriteString("The user is building a semantic search tool for their Unity project using Qdrant and Gemini Embeddings.\n\n")
	fmt.Fprintf(&b, "Project Description: %q\n", req.ProjectDescription)
	fmt.Fprintf(&b, "Current Qdrant Collection Name: %q\n", req.CollectionName)
	if req.HasSchema() {
		fmt.Fprintf(&b, "Existing Schema/Payload Structure: %q\n", req.ExistingSchema)
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "Suggest exactly %d optimizations for the Qdrant payload schema or indexing strategy.\n", SuggestionCount)
	b.WriteString("For example, should they filter by 'AssetType' (Script vs Markdown)? ")
	b.WriteString("Should they include 'MethodSignature' in the payload?\n")
	if req.HasSchema() {
		b.WriteString("Analyze the provided schema for potential improvements.\n")
	}
	b.WriteString("\n")
	b.WriteString("Format the response as a JSON object with a 'suggestions' array, ")
	b.WriteString("where each item has a 'title' and 'reasoning'.\n")

	return b.String()
}

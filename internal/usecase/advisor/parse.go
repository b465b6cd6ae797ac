package advisor

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/kailas-cloud/indexgen/internal/domain/suggestion"
)

var errNotJSON = errors.New("advisor response is not JSON")

// ParseSuggestions decodes a provider reply. The shape is untrusted: a missing
// or non-array "suggestions" yields an empty list, and items with missing or
// non-string fields get empty strings. Only a reply that is not JSON at all is
// an error. An empty reply is an empty list.
func ParseSuggestions(body string) ([]suggestion.Suggestion, error) {
	raw := strings.TrimSpace(body)
	if raw == "" {
		return []suggestion.Suggestion{}, nil
	}
	if !json.Valid([]byte(raw)) {
		raw = extractJSONObject(raw)
		if !json.Valid([]byte(raw)) {
			return nil, errNotJSON
		}
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &envelope); err != nil {
		return []suggestion.Suggestion{}, nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(envelope["suggestions"], &items); err != nil {
		return []suggestion.Suggestion{}, nil
	}

	out := make([]suggestion.Suggestion, 0, len(items))
	for _, item := range items {
		var fields map[string]any
		_ = json.Unmarshal(item, &fields) // non-objects leave fields nil
		out = append(out, suggestion.Suggestion{
			Title:     stringField(fields, "title"),
			Reasoning: stringField(fields, "reasoning"),
		})
	}
	return out, nil
}

func stringField(m map[string]any, key string) string {
	if s, ok := m[key].(string); ok {
		return s
	}
	return ""
}

// extractJSONObject trims prose or code fences around the outermost JSON object.
func extractJSONObject(s string) string {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start >= 0 && end > start {
		return s[start : end+1]
	}
	return s
}

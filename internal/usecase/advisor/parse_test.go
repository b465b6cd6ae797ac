package advisor

import (
	"testing"

	"github.com/kailas-cloud/indexgen/internal/domain/suggestion"
)

func TestParseSuggestions(t *testing.T) {
	tests := []struct {
		name string
		body string
		want []suggestion.Suggestion
	}{
		{
			name: "well formed",
			body: `{"suggestions":[{"title":"A","reasoning":"ra"},{"title":"B","reasoning":"rb"}]}`,
			want: []suggestion.Suggestion{{Title: "A", Reasoning: "ra"}, {Title: "B", Reasoning: "rb"}},
		},
		{
			name: "empty body",
			body: "  ",
			want: []suggestion.Suggestion{},
		},
		{
			name: "missing suggestions",
			body: `{"other":1}`,
			want: []suggestion.Suggestion{},
		},
		{
			name: "null suggestions",
			body: `{"suggestions":null}`,
			want: []suggestion.Suggestion{},
		},
		{
			name: "suggestions not an array",
			body: `{"suggestions":"three of them"}`,
			want: []suggestion.Suggestion{},
		},
		{
			name: "top level array",
			body: `[1,2,3]`,
			want: []suggestion.Suggestion{},
		},
		{
			name: "missing and mistyped fields",
			body: `{"suggestions":[{"title":"only title"},{"reasoning":"only reasoning"},{"title":7,"reasoning":true},"bare"]}`,
			want: []suggestion.Suggestion{
				{Title: "only title"},
				{Reasoning: "only reasoning"},
				{},
				{},
			},
		},
		{
			name: "wrapped in code fence",
			body: "```json\n{\"suggestions\":[{\"title\":\"A\",\"reasoning\":\"r\"}]}\n```",
			want: []suggestion.Suggestion{{Title: "A", Reasoning: "r"}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseSuggestions(tc.body)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got == nil {
				t.Fatal("expected non-nil slice")
			}
			if len(got) != len(tc.want) {
				t.Fatalf("len = %d, want %d (%+v)", len(got), len(tc.want), got)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Errorf("[%d] = %+v, want %+v", i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestParseSuggestions_NotJSON(t *testing.T) {
	for _, body := range []string{"plain prose", "{broken", "{\"suggestions\": [}"} {
		if _, err := ParseSuggestions(body); err == nil {
			t.Errorf("ParseSuggestions(%q) expected error", body)
		}
	}
}

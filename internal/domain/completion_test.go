package domain

import "testing"

func TestDefaultModel(t *testing.T) {
	tests := []struct {
		provider string
		want     string
	}{
		{ProviderGemini, "gemini-2.5-flash"},
		{ProviderOpenAI, "gpt-4o-mini"},
		{"claude", ""},
		{"", ""},
	}
	for _, tc := range tests {
		if got := DefaultModel(tc.provider); got != tc.want {
			t.Errorf("DefaultModel(%q) = %q, want %q", tc.provider, got, tc.want)
		}
		if known := IsKnownProvider(tc.provider); known != (tc.want != "") {
			t.Errorf("IsKnownProvider(%q) = %v", tc.provider, known)
		}
	}
}

package util

import "testing"

func TestSanitizeForFilename(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "backend-engineer", "backend-engineer"},
		{"spaces to hyphens", "Backend Engineer", "backend-engineer"},
		{"strips punctuation", "Backend Engineer (v2)", "backend-engineer-v2"},
		{"collapses hyphens", "a -- b", "a-b"},
		{"trims hyphens", " - code reviewer - ", "code-reviewer"},
		{"underscores kept", "lint_and_format", "lint_and_format"},
		{"empty", "", ""},
		{"only punctuation", "(!!)", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeForFilename(tt.in); got != tt.want {
				t.Errorf("SanitizeForFilename(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"shorter than max", "abc", 10, "abc"},
		{"exact length", "abcde", 5, "abcde"},
		{"truncated", "abcdef", 5, "abcd…"},
		{"max one", "abcdef", 1, "…"},
		{"max zero", "abc", 0, ""},
		{"multibyte", "héllo wörld", 6, "héllo…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.in, tt.max); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
			}
		})
	}
}

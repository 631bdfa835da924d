package cv

import "testing"

func TestEscapeLaTeX(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"plain", "Asha Menon", "Asha Menon"},
		{"ampersand", "R&D Engineer", `R\&D Engineer`},
		{"percent", "Grew revenue 20%", `Grew revenue 20\%`},
		{"underscore and hash", "team_lead #1", `team\_lead \#1`},
		{"dollar and braces", "{$5k}", `\{\$5k\}`},
		{"backslash", `C:\temp`, `C:\textbackslash{}temp`},
		{"caret and tilde", "x^2 ~y", `x\textasciicircum{}2 \textasciitilde{}y`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EscapeLaTeX(tt.input); got != tt.want {
				t.Errorf("EscapeLaTeX(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

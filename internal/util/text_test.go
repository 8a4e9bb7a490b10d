package util

import "testing"

func TestCleanItemName(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "curly apostrophe", input: "Dragon’s Blade", want: "Dragon's Blade"},
		{name: "curly double quotes", input: "“Gem”", want: `"Gem"`},
		{name: "surrounding whitespace", input: "  Arcana  ", want: "Arcana"},
		{name: "fullwidth digits folded", input: "Ｘ２ Gem", want: "X2 Gem"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CleanItemName(tc.input); got != tc.want {
				t.Fatalf("CleanItemName(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestIsNoiseToken(t *testing.T) {
	noisy := []string{"5", "12,345", "1.5", "x", "", " 7 "}
	for _, s := range noisy {
		if !IsNoiseToken(s) {
			t.Fatalf("IsNoiseToken(%q) = false, want true", s)
		}
	}

	clean := []string{"Dragon's Blade", "x5 Arcana", "Gem of True Sight"}
	for _, s := range clean {
		if IsNoiseToken(s) {
			t.Fatalf("IsNoiseToken(%q) = true, want false", s)
		}
	}
}

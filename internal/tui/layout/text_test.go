package layout

import "testing"

func TestVisibleLength(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		plain     string
		wantWidth int
	}{
		{"plain hint", "j/k:move", "j/k:move", 8},
		{"styled key", "\x1b[38;5;66mj/k\x1b[0m:move", "j/k:move", 8},
		{"styled row", "\x1b[1m\x1b[48;5;66mWork (3)\x1b[0m", "Work (3)", 8},
		{"folder name in kana", "\x1b[1mブックマーク\x1b[0m", "ブックマーク", 6},
		{"only codes", "\x1b[0m\x1b[0m", "", 0},
		{"empty", "", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripANSI(tt.input); got != tt.plain {
				t.Errorf("StripANSI(%q) = %q, want %q", tt.input, got, tt.plain)
			}
			if got := VisibleLength(tt.input); got != tt.wantWidth {
				t.Errorf("VisibleLength(%q) = %d, want %d", tt.input, got, tt.wantWidth)
			}
		})
	}
}

func TestTruncateText(t *testing.T) {
	cfg := DefaultConfig().Text

	tests := []struct {
		name      string
		text      string
		maxWidth  int
		want      string
		truncated bool
	}{
		{"short title", "Go", 10, "Go", false},
		{"exact width", "Go docs", 7, "Go docs", false},
		{"long URL", "https://pkg.go.dev/net/http", 14, "https://pkg...", true},
		{"room for ellipsis only", "Reading", 3, "...", true},
		{"narrower than ellipsis", "Reading", 2, "..", true},
		{"zero width", "Reading", 0, "", true},
		{"empty title", "", 10, "", false},
		{"wide runes", "ブックマーク", 5, "ブッ...", true},
		{"wide runes fit", "ブックマーク", 6, "ブックマーク", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, truncated := TruncateText(tt.text, tt.maxWidth, cfg)
			if got != tt.want || truncated != tt.truncated {
				t.Errorf("TruncateText(%q, %d) = (%q, %v), want (%q, %v)",
					tt.text, tt.maxWidth, got, truncated, tt.want, tt.truncated)
			}
		})
	}
}

func TestTruncateWithSuffix(t *testing.T) {
	cfg := DefaultConfig().Text

	tests := []struct {
		name     string
		text     string
		maxWidth int
		suffix   string
		want     string
	}{
		{"no truncation", "Dev", 10, " (3)", "Dev (3)"},
		{"exact fit", "Dev", 7, " (3)", "Dev (3)"},
		{"truncates text only", "Development", 12, " (42)", "Deve... (42)"},
		{"empty suffix", "Development", 8, "", "Devel..."},
		{"suffix wider than max", "Dev", 3, " (42)", "..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TruncateWithSuffix(tt.text, tt.maxWidth, tt.suffix, cfg)
			if got != tt.want {
				t.Errorf("TruncateWithSuffix(%q, %d, %q) = %q, want %q",
					tt.text, tt.maxWidth, tt.suffix, got, tt.want)
			}
		})
	}
}

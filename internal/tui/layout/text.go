package layout

import (
	"regexp"
	"unicode/utf8"
)

// ansiRegex matches ANSI escape sequences.
var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// StripANSI removes ANSI escape codes from a string.
func StripANSI(s string) string {
	return ansiRegex.ReplaceAllString(s, "")
}

// VisibleLength returns the visible length of a string (excluding ANSI codes).
func VisibleLength(s string) int {
	return utf8.RuneCountInString(StripANSI(s))
}

// TruncateText truncates text to maxWidth with ellipsis.
// Returns the truncated text and whether truncation occurred.
func TruncateText(text string, maxWidth int, cfg TextConfig) (string, bool) {
	if maxWidth <= 0 {
		return "", true
	}

	ellipsisLen := utf8.RuneCountInString(cfg.Ellipsis)
	textLen := utf8.RuneCountInString(text)

	if textLen <= maxWidth {
		return text, false
	}

	// Need space for ellipsis
	if maxWidth <= ellipsisLen {
		runes := []rune(cfg.Ellipsis)
		return string(runes[:maxWidth]), true
	}

	runes := []rune(text)
	truncLen := maxWidth - ellipsisLen
	return string(runes[:truncLen]) + cfg.Ellipsis, true
}

// TruncateWithSuffix truncates text while keeping suffix intact.
// Example: TruncateWithSuffix("Development", 12, " (42)", cfg) -> "Deve... (42)"
func TruncateWithSuffix(text string, maxWidth int, suffix string, cfg TextConfig) string {
	suffixLen := utf8.RuneCountInString(suffix)
	if suffixLen >= maxWidth {
		out, _ := TruncateText(text+suffix, maxWidth, cfg)
		return out
	}
	out, _ := TruncateText(text, maxWidth-suffixLen, cfg)
	return out + suffix
}

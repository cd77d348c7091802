package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds all lipgloss styles for the TUI.
type Styles struct {
	App          lipgloss.Style
	Pane         lipgloss.Style
	Modal        lipgloss.Style
	Title        lipgloss.Style
	Header       lipgloss.Style
	Item         lipgloss.Style
	ItemSelected lipgloss.Style
	ItemGrabbed  lipgloss.Style
	Count        lipgloss.Style
	URL          lipgloss.Style
	Help         lipgloss.Style
	Empty        lipgloss.Style
	HintKey      lipgloss.Style // Key portion of hints (e.g., "Enter", "j/k")
	HintDesc     lipgloss.Style // Description portion of hints (e.g., "confirm", "move")
	MsgInfo      lipgloss.Style
	MsgSuccess   lipgloss.Style
	MsgWarning   lipgloss.Style
	MsgError     lipgloss.Style
}

// DefaultStyles returns the default style configuration.
// Industrial design: grayscale with single desaturated teal accent.
func DefaultStyles() Styles {
	// Industrial color palette
	primary := lipgloss.AdaptiveColor{Light: "#505050", Dark: "#A0A0A0"} // main text
	subtle := lipgloss.AdaptiveColor{Light: "#888888", Dark: "#606060"}  // secondary text
	accent := lipgloss.AdaptiveColor{Light: "#4A7070", Dark: "#5F8787"}  // desaturated teal
	border := lipgloss.AdaptiveColor{Light: "#888888", Dark: "#505050"}  // inactive borders

	return Styles{
		App: lipgloss.NewStyle().
			PaddingTop(1).
			PaddingLeft(2).
			PaddingRight(2),

		Pane: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(border).
			Padding(0, 1),

		Modal: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(accent).
			Padding(1, 2),

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent),

		Header: lipgloss.NewStyle().
			Foreground(subtle).
			PaddingLeft(1),

		Item: lipgloss.NewStyle().
			Foreground(primary).
			PaddingLeft(1),

		ItemSelected: lipgloss.NewStyle().
			PaddingLeft(1).
			Background(accent).
			Foreground(lipgloss.Color("#1A1A1A")),

		ItemGrabbed: lipgloss.NewStyle().
			PaddingLeft(1).
			Bold(true).
			Reverse(true),

		Count: lipgloss.NewStyle().
			Foreground(subtle),

		URL: lipgloss.NewStyle().
			Foreground(subtle).
			PaddingLeft(3),

		Help: lipgloss.NewStyle().
			Foreground(subtle),

		Empty: lipgloss.NewStyle().
			Foreground(subtle).
			PaddingLeft(1),

		HintKey: lipgloss.NewStyle().
			Foreground(accent),

		HintDesc: lipgloss.NewStyle().
			Foreground(subtle),

		MsgInfo: lipgloss.NewStyle().
			Foreground(accent).
			Bold(true),

		MsgSuccess: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#338833", Dark: "#66CC66"}).
			Bold(true),

		MsgWarning: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#CC8800", Dark: "#FFAA00"}).
			Bold(true),

		MsgError: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#CC3333", Dark: "#FF6666"}).
			Bold(true),
	}
}

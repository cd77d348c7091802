package layout

// LayoutConfig holds all layout-related configuration values.
type LayoutConfig struct {
	List  ListConfig
	Modal ModalConfig
	Input InputConfig
	Text  TextConfig
}

// ListConfig holds dimensions of the folder and bookmark lists.
type ListConfig struct {
	// HeightReduction is subtracted from terminal height for list rows.
	// Accounts for: app padding (1) + header (2) + pane borders (2) + help bar (3) = 8
	HeightReduction int

	// MinHeight is the minimum number of list rows.
	MinHeight int

	// ContentPadding is subtracted from terminal width for row rendering.
	// Accounts for app padding, pane border and pane padding on each side.
	ContentPadding int

	// LinesPerBookmark is the number of rows one bookmark occupies (title + URL).
	LinesPerBookmark int
}

// ModalConfig holds modal dialog configuration.
type ModalConfig struct {
	// WidthPercent is the modal width as percentage of terminal width.
	WidthPercent int

	// MinWidth is the minimum modal width in characters.
	MinWidth int

	// MaxWidth is the maximum modal width in characters.
	MaxWidth int

	// HelpColumnWidth is the width of each help overlay column.
	HelpColumnWidth int
}

// InputConfig holds text input configuration.
type InputConfig struct {
	// Character limits
	NameCharLimit   int
	TitleCharLimit  int
	URLCharLimit    int
	SearchCharLimit int

	// Display width shared by all inputs
	Width int
}

// TextConfig holds text truncation configuration.
type TextConfig struct {
	// Ellipsis is the string used to indicate truncation.
	Ellipsis string
}

// DefaultConfig returns the default layout configuration.
func DefaultConfig() LayoutConfig {
	return LayoutConfig{
		List: ListConfig{
			HeightReduction:  8, // app padding (1) + header (2) + pane borders (2) + help bar (3)
			MinHeight:        4,
			ContentPadding:   8,
			LinesPerBookmark: 2,
		},
		Modal: ModalConfig{
			WidthPercent:    50,
			MinWidth:        40,
			MaxWidth:        80,
			HelpColumnWidth: 26,
		},
		Input: InputConfig{
			NameCharLimit:   100,
			TitleCharLimit:  200,
			URLCharLimit:    2000,
			SearchCharLimit: 100,
			Width:           40,
		},
		Text: TextConfig{
			Ellipsis: "...",
		},
	}
}

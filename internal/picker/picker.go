package picker

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nikbrunner/shelf/internal/search"
)

var (
	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")).
			Bold(true)

	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	matchStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Underline(true)

	folderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("99"))

	urlStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244")).
			Italic(true)

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("99")).
			Bold(true).
			MarginBottom(1)

	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

// linesPerResult is the height of one rendered result.
const linesPerResult = 2

// Picker is a simple TUI for selecting from search results.
type Picker struct {
	results   []search.Result
	query     string
	cursor    int
	offset    int
	selected  bool
	cancelled bool
	width     int
	height    int
}

// New creates a new Picker with the given search results.
func New(results []search.Result, query string) Picker {
	return Picker{
		results: results,
		query:   query,
		width:   80,
		height:  24,
	}
}

// Init implements tea.Model.
func (p Picker) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (p Picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.width = msg.Width
		p.height = msg.Height
		p.scroll()
		return p, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc, tea.KeyCtrlC:
			p.cancelled = true
			return p, tea.Quit

		case tea.KeyEnter:
			p.selected = len(p.results) > 0
			p.cancelled = !p.selected
			return p, tea.Quit

		case tea.KeyDown:
			p.move(1)
			return p, nil

		case tea.KeyUp:
			p.move(-1)
			return p, nil
		}

		// Handle j/k vim keys
		if msg.Type == tea.KeyRunes {
			switch string(msg.Runes) {
			case "j":
				p.move(1)
			case "k":
				p.move(-1)
			case "q":
				p.cancelled = true
				return p, tea.Quit
			}
		}
	}

	return p, nil
}

func (p *Picker) move(delta int) {
	next := p.cursor + delta
	if next < 0 || next >= len(p.results) {
		return
	}
	p.cursor = next
	p.scroll()
}

// visible is how many results fit between header and footer.
func (p Picker) visible() int {
	n := (p.height - 4) / linesPerResult
	if n < 1 {
		n = 1
	}
	return n
}

// scroll keeps the cursor inside the visible window.
func (p *Picker) scroll() {
	if p.cursor < p.offset {
		p.offset = p.cursor
	}
	if p.cursor >= p.offset+p.visible() {
		p.offset = p.cursor - p.visible() + 1
	}
}

// View implements tea.Model.
func (p Picker) View() string {
	var b strings.Builder

	// Header
	b.WriteString(headerStyle.Render(fmt.Sprintf("Search: %s (%d results)", p.query, len(p.results))))
	b.WriteString("\n\n")

	if len(p.results) == 0 {
		b.WriteString(urlStyle.Render("No matches."))
		b.WriteString("\n")
	}

	end := min(p.offset+p.visible(), len(p.results))
	for i := p.offset; i < end; i++ {
		result := p.results[i]
		cursor := "  "
		style := normalStyle
		if i == p.cursor {
			cursor = "> "
			style = selectedStyle
		}

		title := highlight(result.Bookmark.DisplayTitle(), result.MatchedIndexes, style)
		folder := folderStyle.Render("[" + result.Folder + "]")

		fmt.Fprintf(&b, "%s%s %s\n", cursor, title, folder)
		fmt.Fprintf(&b, "   %s\n", urlStyle.Render(result.Bookmark.URL))
	}

	// Footer
	b.WriteString("\n")
	b.WriteString(footerStyle.Render("j/k: move  Enter: open  q/Esc: cancel"))

	return b.String()
}

// highlight renders the matched byte positions of s with matchStyle.
func highlight(s string, matched []int, base lipgloss.Style) string {
	if len(matched) == 0 {
		return base.Render(s)
	}
	hit := make(map[int]bool, len(matched))
	for _, i := range matched {
		hit[i] = true
	}

	var b strings.Builder
	for i, r := range s {
		if hit[i] {
			b.WriteString(matchStyle.Render(string(r)))
		} else {
			b.WriteString(base.Render(string(r)))
		}
	}
	return b.String()
}

// Selected returns the chosen result. ok is false if the user cancelled.
func (p Picker) Selected() (result search.Result, ok bool) {
	if p.cancelled || !p.selected || p.cursor >= len(p.results) {
		return search.Result{}, false
	}
	return p.results[p.cursor], true
}

// Cancelled returns true if the user cancelled the selection.
func (p Picker) Cancelled() bool {
	return p.cancelled
}

package tui

import (
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/nikbrunner/shelf/internal/tui/layout"
)

// Mode is the input mode of the app.
type Mode int

const (
	ModeNormal        Mode = iota // browsing a list
	ModeSearch                    // typing into the folder search
	ModeCreateFolder              // folder name dialog
	ModeRenameFolder              // folder name dialog, prefilled
	ModeAddBookmark               // URL + title dialog
	ModeEditTitle                 // title dialog, prefilled
	ModeConfirmDelete             // yes/no dialog
	ModeGrab                      // dragging a bookmark
	ModeFetching                  // waiting for a page title
	ModeHelp                      // help overlay
)

func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeSearch:
		return "search"
	case ModeCreateFolder:
		return "create-folder"
	case ModeRenameFolder:
		return "rename-folder"
	case ModeAddBookmark:
		return "add-bookmark"
	case ModeEditTitle:
		return "edit-title"
	case ModeConfirmDelete:
		return "confirm-delete"
	case ModeGrab:
		return "grab"
	case ModeFetching:
		return "fetching"
	case ModeHelp:
		return "help"
	default:
		return "unknown"
	}
}

// View is the screen the app shows.
type View int

const (
	ViewFolders   View = iota // list of folders
	ViewBookmarks             // bookmarks of one folder
)

// MessageType determines how a message is styled.
type MessageType int

const (
	MessageInfo MessageType = iota
	MessageSuccess
	MessageWarning
	MessageError
)

// ModalState holds the inputs of the folder and bookmark dialogs.
type ModalState struct {
	NameInput  textinput.Model // folder name
	URLInput   textinput.Model // new bookmark URL
	TitleInput textinput.Model // bookmark title
	Target     string          // folder being renamed
	Index      int             // bookmark being edited
}

// NewModalState creates a new ModalState with initialized inputs.
func NewModalState(cfg layout.LayoutConfig) ModalState {
	nameInput := textinput.New()
	nameInput.Placeholder = "Folder name"
	nameInput.CharLimit = cfg.Input.NameCharLimit
	nameInput.Width = cfg.Input.Width

	urlInput := textinput.New()
	urlInput.Placeholder = "https://..."
	urlInput.CharLimit = cfg.Input.URLCharLimit
	urlInput.Width = cfg.Input.Width

	titleInput := textinput.New()
	titleInput.Placeholder = "Title"
	titleInput.CharLimit = cfg.Input.TitleCharLimit
	titleInput.Width = cfg.Input.Width

	return ModalState{
		NameInput:  nameInput,
		URLInput:   urlInput,
		TitleInput: titleInput,
	}
}

// ResetInputs clears all modal inputs for a new modal session.
func (m *ModalState) ResetInputs() {
	m.NameInput.Reset()
	m.NameInput.Blur()
	m.URLInput.Reset()
	m.URLInput.Blur()
	m.TitleInput.Reset()
	m.TitleInput.Blur()
	m.Target = ""
	m.Index = 0
}

// SearchState holds the folder search.
type SearchState struct {
	Input textinput.Model
	Query string // active query, kept after the input closes
}

// NewSearchState creates a new SearchState with initialized input.
func NewSearchState(cfg layout.LayoutConfig) SearchState {
	input := textinput.New()
	input.Placeholder = "Search title or URL..."
	input.CharLimit = cfg.Input.SearchCharLimit
	input.Width = cfg.Input.Width
	input.Prompt = "/ "
	return SearchState{Input: input}
}

// Active reports whether a query filters the list.
func (s *SearchState) Active() bool {
	return s.Query != ""
}

// Reset clears the search.
func (s *SearchState) Reset() {
	s.Input.Reset()
	s.Input.Blur()
	s.Query = ""
}

// GrabState holds a drag in progress.
type GrabState struct {
	Order  []int // Order[i] is the original index shown at row i
	Pos    int   // row of the grabbed bookmark
	Origin int   // row the drag started at
}

// Start begins dragging row pos of a list of n bookmarks.
func (g *GrabState) Start(n, pos int) {
	g.Order = make([]int, n)
	for i := range g.Order {
		g.Order[i] = i
	}
	g.Pos = pos
	g.Origin = pos
}

// MoveBy moves the grabbed bookmark delta rows. Reports whether it moved.
func (g *GrabState) MoveBy(delta int) bool {
	next := g.Pos + delta
	if next < 0 || next >= len(g.Order) {
		return false
	}
	g.Order[g.Pos], g.Order[next] = g.Order[next], g.Order[g.Pos]
	g.Pos = next
	return true
}

// Changed reports whether the order differs from the original.
func (g *GrabState) Changed() bool {
	for i, old := range g.Order {
		if i != old {
			return true
		}
	}
	return false
}

// Reset ends the drag.
func (g *GrabState) Reset() {
	g.Order = nil
	g.Pos = 0
	g.Origin = 0
}

// PendingDelete is the item a confirm dialog asks about.
type PendingDelete struct {
	IsFolder bool
	Folder   string
	Index    int    // bookmark index within Folder
	Label    string // shown in the prompt
}

// Prompt returns the confirmation question.
func (p PendingDelete) Prompt() string {
	if p.IsFolder {
		return "Delete \"" + p.Folder + "\" and all its bookmarks?"
	}
	return "Delete \"" + p.Label + "\"?"
}

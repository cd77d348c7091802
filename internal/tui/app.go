package tui

import (
	"context"
	"io"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nikbrunner/shelf/internal/model"
	"github.com/nikbrunner/shelf/internal/search"
	"github.com/nikbrunner/shelf/internal/shelf"
	"github.com/nikbrunner/shelf/internal/storage"
	"github.com/nikbrunner/shelf/internal/tui/layout"
)

// messageDuration is how long a message stays on screen.
const messageDuration = 2 * time.Second

// TitleFunc looks up the title of the page at url.
type TitleFunc func(ctx context.Context, url string) (string, error)

// App is the main bubbletea model for the bookmark shelf.
type App struct {
	service      *shelf.Service
	keys         KeyMap
	styles       Styles
	layoutConfig layout.LayoutConfig
	logger       *slog.Logger

	fetchTitle   TitleFunc // nil = never fetch
	fetchTimeout time.Duration
	openURL      func(string) error
	copyURL      func(string) error

	// Navigation state
	mode      Mode
	view      View
	folders   []model.Folder   // folder view rows
	folder    string           // open folder in bookmark view
	bookmarks []model.Bookmark // full list of the open folder
	matches   []search.Match   // bookmark view rows
	cursor    int

	// For gg command
	lastKeyWasG bool

	search        SearchState
	modal         ModalState
	grab          GrabState
	pending       PendingDelete
	confirmDelete bool
	fetchSeq      int // bumped per title lookup; older results are dropped

	// Message display
	messageText string
	messageType MessageType
	messageSeq  int

	// Window dimensions
	width  int
	height int
}

// AppParams holds parameters for creating a new App.
type AppParams struct {
	Service    *shelf.Service
	Config     *storage.Config    // optional, uses defaults if nil
	FetchTitle TitleFunc          // optional, titles are not fetched if nil
	OpenURL    func(string) error // optional
	CopyURL    func(string) error // optional
	Logger     *slog.Logger       // optional
	Keys       *KeyMap            // optional, uses default if nil
	Styles     *Styles            // optional, uses default if nil
}

// NewApp creates a new App with the given parameters.
func NewApp(params AppParams) App {
	keys := DefaultKeyMap()
	if params.Keys != nil {
		keys = *params.Keys
	}

	styles := DefaultStyles()
	if params.Styles != nil {
		styles = *params.Styles
	}

	config := storage.DefaultConfig()
	if params.Config != nil {
		config = *params.Config
	}

	logger := params.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	layoutConfig := layout.DefaultConfig()

	app := App{
		service:       params.Service,
		keys:          keys,
		styles:        styles,
		layoutConfig:  layoutConfig,
		logger:        logger,
		fetchTimeout:  config.FetchTimeout(),
		openURL:       params.OpenURL,
		copyURL:       params.CopyURL,
		search:        NewSearchState(layoutConfig),
		modal:         NewModalState(layoutConfig),
		confirmDelete: !config.SkipDeleteConfirm,
		width:         80,
		height:        24,
	}
	if config.FetchTitles {
		app.fetchTitle = params.FetchTitle
	}

	app.reload()
	return app
}

// Mode returns the current input mode.
func (a App) Mode() Mode {
	return a.mode
}

// CurrentView returns the screen being shown.
func (a App) CurrentView() View {
	return a.view
}

// CurrentFolder returns the open folder, or "" in the folder view.
func (a App) CurrentFolder() string {
	return a.folder
}

// Cursor returns the current cursor position.
func (a App) Cursor() int {
	return a.cursor
}

// Message returns the message currently shown.
func (a App) Message() string {
	return a.messageText
}

// SearchQuery returns the active folder search.
func (a App) SearchQuery() string {
	return a.search.Query
}

// ConfirmDelete reports whether deletes ask for confirmation.
func (a App) ConfirmDelete() bool {
	return a.confirmDelete
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return nil
}

// View implements tea.Model.
func (a App) View() string {
	return a.renderView()
}

// reload re-reads the rows of the current view from the service.
func (a *App) reload() {
	a.folders = a.service.Folders()

	if a.view == ViewBookmarks {
		bookmarks, err := a.service.Bookmarks(a.folder)
		if err != nil {
			// The folder is gone, e.g. deleted by another writer
			a.logger.Debug("open folder vanished", "folder", a.folder, "error", err)
			a.showFolders(a.folder)
			return
		}
		a.bookmarks = bookmarks
		a.matches = search.FilterFolder(bookmarks, a.search.Query)
	}

	a.clampCursor()
}

// showFolders switches to the folder view with the cursor on name if present.
func (a *App) showFolders(name string) {
	a.view = ViewFolders
	a.folder = ""
	a.bookmarks = nil
	a.matches = nil
	a.search.Reset()
	a.folders = a.service.Folders()

	a.cursor = 0
	for i, f := range a.folders {
		if f.Name == name {
			a.cursor = i
			break
		}
	}
}

// openFolder switches to the bookmark view of name.
func (a *App) openFolder(name string) {
	a.view = ViewBookmarks
	a.folder = name
	a.search.Reset()
	a.cursor = 0
	a.reload()
}

// rowCount returns the number of rows in the current view.
func (a App) rowCount() int {
	if a.view == ViewFolders {
		return len(a.folders)
	}
	return len(a.matches)
}

func (a *App) clampCursor() {
	n := a.rowCount()
	if a.cursor >= n {
		a.cursor = n - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
}

func (a *App) moveCursor(delta int) {
	a.cursor += delta
	a.clampCursor()
}

// selectedFolder returns the folder under the cursor.
func (a App) selectedFolder() (model.Folder, bool) {
	if a.view != ViewFolders || a.cursor >= len(a.folders) {
		return model.Folder{}, false
	}
	return a.folders[a.cursor], true
}

// selectedMatch returns the bookmark under the cursor with its folder index.
func (a App) selectedMatch() (search.Match, bool) {
	if a.view != ViewBookmarks || a.cursor >= len(a.matches) {
		return search.Match{}, false
	}
	return a.matches[a.cursor], true
}

// setMessage shows text until it is replaced or messageDuration passes.
func (a *App) setMessage(text string, typ MessageType) tea.Cmd {
	a.messageSeq++
	seq := a.messageSeq
	a.messageText = text
	a.messageType = typ
	return tea.Tick(messageDuration, func(time.Time) tea.Msg {
		return clearMessageMsg{seq: seq}
	})
}

// clearMessageMsg clears the message it was scheduled for.
type clearMessageMsg struct {
	seq int
}

// titleFetchedMsg carries the result of a page title lookup.
type titleFetchedMsg struct {
	seq    int
	folder string
	url    string
	title  string
	err    error
}

package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nikbrunner/shelf/internal/model"
	"github.com/nikbrunner/shelf/internal/shelf"
	"github.com/nikbrunner/shelf/internal/storage"
)

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case clearMessageMsg:
		if msg.seq == a.messageSeq {
			a.messageText = ""
		}
		return a, nil

	case titleFetchedMsg:
		return a.handleTitleFetched(msg)

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}

		switch a.mode {
		case ModeNormal:
			return a.handleNormalMode(msg)
		case ModeSearch:
			return a.handleSearchMode(msg)
		case ModeCreateFolder, ModeRenameFolder:
			return a.handleFolderForm(msg)
		case ModeAddBookmark:
			return a.handleAddForm(msg)
		case ModeEditTitle:
			return a.handleEditForm(msg)
		case ModeConfirmDelete:
			return a.handleConfirmDelete(msg)
		case ModeGrab:
			return a.handleGrab(msg)
		case ModeFetching:
			if key.Matches(msg, a.keys.Cancel) {
				a.mode = ModeNormal
			}
			return a, nil
		case ModeHelp:
			if key.Matches(msg, a.keys.Help, a.keys.Quit, a.keys.Cancel) {
				a.mode = ModeNormal
			}
			return a, nil
		}
	}

	return a, nil
}

func (a App) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Handle gg sequence
	if key.Matches(msg, a.keys.Top) {
		if a.lastKeyWasG {
			a.cursor = 0
			a.lastKeyWasG = false
			return a, nil
		}
		a.lastKeyWasG = true
		return a, nil
	}
	a.lastKeyWasG = false

	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit

	case key.Matches(msg, a.keys.Help):
		a.mode = ModeHelp
		return a, nil

	case key.Matches(msg, a.keys.Down):
		a.moveCursor(1)
		return a, nil

	case key.Matches(msg, a.keys.Up):
		a.moveCursor(-1)
		return a, nil

	case key.Matches(msg, a.keys.Bottom):
		a.cursor = a.rowCount() - 1
		a.clampCursor()
		return a, nil

	case key.Matches(msg, a.keys.ToggleConfirm):
		a.confirmDelete = !a.confirmDelete
		if a.confirmDelete {
			cmd := a.setMessage("Delete confirmation on", MessageInfo)
			return a, cmd
		}
		cmd := a.setMessage("Delete confirmation off", MessageInfo)
		return a, cmd
	}

	if a.view == ViewFolders {
		return a.handleFolderKeys(msg)
	}
	return a.handleBookmarkKeys(msg)
}

func (a App) handleFolderKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Open):
		if f, ok := a.selectedFolder(); ok {
			a.openFolder(f.Name)
		}

	case key.Matches(msg, a.keys.Add):
		a.modal.ResetInputs()
		a.mode = ModeCreateFolder
		cmd := a.modal.NameInput.Focus()
		return a, cmd

	case key.Matches(msg, a.keys.Edit):
		f, ok := a.selectedFolder()
		if !ok {
			return a, nil
		}
		a.modal.ResetInputs()
		a.modal.Target = f.Name
		a.modal.NameInput.SetValue(f.Name)
		a.modal.NameInput.CursorEnd()
		a.mode = ModeRenameFolder
		cmd := a.modal.NameInput.Focus()
		return a, cmd

	case key.Matches(msg, a.keys.Delete):
		f, ok := a.selectedFolder()
		if !ok {
			return a, nil
		}
		a.pending = PendingDelete{IsFolder: true, Folder: f.Name, Label: f.Name}
		if a.confirmDelete {
			a.mode = ModeConfirmDelete
			return a, nil
		}
		return a.executeDelete()
	}

	return a, nil
}

func (a App) handleBookmarkKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Back):
		// Going back re-reads storage so the counts are current
		if _, err := a.service.Refresh(); err != nil {
			a.logger.Error("refresh failed", "error", err)
		}
		a.showFolders(a.folder)
		return a, nil

	case key.Matches(msg, a.keys.Search):
		a.search.Input.SetValue(a.search.Query)
		a.search.Input.CursorEnd()
		a.mode = ModeSearch
		cmd := a.search.Input.Focus()
		return a, cmd

	case key.Matches(msg, a.keys.Add):
		a.modal.ResetInputs()
		a.mode = ModeAddBookmark
		cmd := a.modal.URLInput.Focus()
		return a, cmd

	case key.Matches(msg, a.keys.Edit):
		m, ok := a.selectedMatch()
		if !ok {
			return a, nil
		}
		a.modal.ResetInputs()
		a.modal.Index = m.Index
		a.modal.TitleInput.SetValue(m.Bookmark.Title)
		a.modal.TitleInput.CursorEnd()
		a.mode = ModeEditTitle
		cmd := a.modal.TitleInput.Focus()
		return a, cmd

	case key.Matches(msg, a.keys.Delete):
		m, ok := a.selectedMatch()
		if !ok {
			return a, nil
		}
		a.pending = PendingDelete{Folder: a.folder, Index: m.Index, Label: m.Bookmark.DisplayTitle()}
		if a.confirmDelete {
			a.mode = ModeConfirmDelete
			return a, nil
		}
		return a.executeDelete()

	case key.Matches(msg, a.keys.Grab):
		if a.search.Active() {
			cmd := a.setMessage("Clear the search to reorder bookmarks.", MessageWarning)
			return a, cmd
		}
		if len(a.bookmarks) < 2 {
			return a, nil
		}
		a.grab.Start(len(a.bookmarks), a.cursor)
		a.mode = ModeGrab
		return a, nil

	case key.Matches(msg, a.keys.MoveDown):
		return a.moveSelected(1)

	case key.Matches(msg, a.keys.MoveUp):
		return a.moveSelected(-1)

	case key.Matches(msg, a.keys.Open, a.keys.Visit):
		m, ok := a.selectedMatch()
		if !ok || a.openURL == nil {
			return a, nil
		}
		if err := a.openURL(m.Bookmark.URL); err != nil {
			cmd := a.showError(err)
			return a, cmd
		}

	case key.Matches(msg, a.keys.YankURL):
		m, ok := a.selectedMatch()
		if !ok || a.copyURL == nil {
			return a, nil
		}
		if err := a.copyURL(m.Bookmark.URL); err != nil {
			cmd := a.showError(err)
			return a, cmd
		}
		cmd := a.setMessage("URL copied!", MessageSuccess)
		return a, cmd
	}

	return a, nil
}

// moveSelected moves the bookmark under the cursor one step and saves.
func (a App) moveSelected(delta int) (tea.Model, tea.Cmd) {
	if a.search.Active() {
		cmd := a.setMessage("Clear the search to reorder bookmarks.", MessageWarning)
		return a, cmd
	}
	from := a.cursor
	to := from + delta
	if from >= len(a.bookmarks) || to < 0 || to >= len(a.bookmarks) {
		return a, nil
	}

	if err := a.service.MoveBookmark(a.folder, from, to); err != nil {
		a.reload()
		cmd := a.showError(err)
		return a, cmd
	}
	a.reload()
	a.cursor = to
	a.clampCursor()
	return a, nil
}

func (a App) handleSearchMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		a.search.Reset()
		a.mode = ModeNormal
		a.reload()
		return a, nil

	case tea.KeyEnter:
		a.search.Input.Blur()
		a.mode = ModeNormal
		return a, nil

	case tea.KeyDown:
		a.moveCursor(1)
		return a, nil

	case tea.KeyUp:
		a.moveCursor(-1)
		return a, nil
	}

	var cmd tea.Cmd
	a.search.Input, cmd = a.search.Input.Update(msg)
	if q := a.search.Input.Value(); q != a.search.Query {
		a.search.Query = q
		a.cursor = 0
		a.reload()
	}
	return a, cmd
}

func (a App) handleFolderForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyEsc:
		a.modal.ResetInputs()
		a.mode = ModeNormal
		return a, nil

	case key.Matches(msg, a.keys.Submit):
		name := strings.TrimSpace(a.modal.NameInput.Value())
		if a.mode == ModeCreateFolder {
			return a.createFolder(name)
		}
		return a.renameFolder(a.modal.Target, name)
	}

	var cmd tea.Cmd
	a.modal.NameInput, cmd = a.modal.NameInput.Update(msg)
	return a, cmd
}

func (a App) createFolder(name string) (tea.Model, tea.Cmd) {
	err := a.service.CreateFolder(name)
	switch {
	case errors.Is(err, model.ErrEmptyName):
		cmd := a.setMessage("Please enter a folder name.", MessageWarning)
		return a, cmd
	case errors.Is(err, model.ErrFolderExists):
		a.reload()
		cmd := a.setMessage("Folder \""+name+"\" already exists!", MessageWarning)
		return a, cmd
	case err != nil:
		a.mode = ModeNormal
		a.reload()
		cmd := a.showError(err)
		return a, cmd
	}

	a.modal.ResetInputs()
	a.mode = ModeNormal
	a.openFolder(name)
	cmd := a.setMessage("Folder \""+name+"\" created!", MessageSuccess)
	return a, cmd
}

func (a App) renameFolder(oldName, newName string) (tea.Model, tea.Cmd) {
	err := a.service.RenameFolder(oldName, newName)
	switch {
	case errors.Is(err, model.ErrEmptyName):
		cmd := a.setMessage("Please enter a folder name.", MessageWarning)
		return a, cmd
	case errors.Is(err, model.ErrFolderExists):
		cmd := a.setMessage("A folder with that name already exists!", MessageWarning)
		return a, cmd
	case err != nil:
		a.mode = ModeNormal
		a.reload()
		cmd := a.showError(err)
		return a, cmd
	}

	a.modal.ResetInputs()
	a.mode = ModeNormal
	a.showFolders(newName)
	if newName == oldName {
		return a, nil
	}
	cmd := a.setMessage("Folder renamed to \""+newName+"\"!", MessageSuccess)
	return a, cmd
}

func (a App) handleAddForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyEsc:
		a.modal.ResetInputs()
		a.mode = ModeNormal
		return a, nil

	case key.Matches(msg, a.keys.NextField):
		if a.modal.URLInput.Focused() {
			a.modal.URLInput.Blur()
			cmd := a.modal.TitleInput.Focus()
			return a, cmd
		}
		a.modal.TitleInput.Blur()
		cmd := a.modal.URLInput.Focus()
		return a, cmd

	case key.Matches(msg, a.keys.Submit):
		url := strings.TrimSpace(a.modal.URLInput.Value())
		title := strings.TrimSpace(a.modal.TitleInput.Value())
		if url == "" {
			cmd := a.setMessage("Please enter a URL.", MessageWarning)
			return a, cmd
		}
		if title == "" && a.fetchTitle != nil {
			a.mode = ModeFetching
			a.fetchSeq++
			cmd := a.fetchTitleCmd(a.fetchSeq, a.folder, url)
			return a, cmd
		}
		return a.addBookmark(url, title)
	}

	var cmd tea.Cmd
	if a.modal.TitleInput.Focused() {
		a.modal.TitleInput, cmd = a.modal.TitleInput.Update(msg)
	} else {
		a.modal.URLInput, cmd = a.modal.URLInput.Update(msg)
	}
	return a, cmd
}

// fetchTitleCmd looks up the page title off the update loop.
func (a App) fetchTitleCmd(seq int, folder, url string) tea.Cmd {
	fetch := a.fetchTitle
	timeout := a.fetchTimeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		title, err := fetch(ctx, url)
		return titleFetchedMsg{seq: seq, folder: folder, url: url, title: title, err: err}
	}
}

func (a App) handleTitleFetched(msg titleFetchedMsg) (tea.Model, tea.Cmd) {
	// Cancelled or superseded
	if a.mode != ModeFetching || msg.seq != a.fetchSeq || msg.folder != a.folder {
		return a, nil
	}
	title := msg.title
	if msg.err != nil {
		a.logger.Debug("title fetch failed", "url", msg.url, "error", msg.err)
		title = ""
	}
	return a.addBookmark(msg.url, title)
}

func (a App) addBookmark(url, title string) (tea.Model, tea.Cmd) {
	b, err := a.service.AddBookmark(a.folder, shelf.Page{Title: title, URL: url})
	a.modal.ResetInputs()
	a.mode = ModeNormal
	if err != nil {
		a.reload()
		cmd := a.showError(err)
		return a, cmd
	}

	a.reload()
	a.cursor = len(a.matches) - 1
	a.clampCursor()
	cmd := a.setMessage("\""+b.Title+"\" added!", MessageSuccess)
	return a, cmd
}

func (a App) handleEditForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyEsc:
		a.modal.ResetInputs()
		a.mode = ModeNormal
		return a, nil

	case key.Matches(msg, a.keys.Submit):
		err := a.service.EditTitle(a.folder, a.modal.Index, a.modal.TitleInput.Value())
		if errors.Is(err, model.ErrEmptyTitle) {
			cmd := a.setMessage("Please enter a title.", MessageWarning)
			return a, cmd
		}
		a.modal.ResetInputs()
		a.mode = ModeNormal
		a.reload()
		if err != nil {
			cmd := a.showError(err)
			return a, cmd
		}
		cmd := a.setMessage("Bookmark updated!", MessageSuccess)
		return a, cmd
	}

	var cmd tea.Cmd
	a.modal.TitleInput, cmd = a.modal.TitleInput.Update(msg)
	return a, cmd
}

func (a App) handleConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Confirm):
		return a.executeDelete()
	case key.Matches(msg, a.keys.Cancel):
		a.pending = PendingDelete{}
		a.mode = ModeNormal
	}
	return a, nil
}

// executeDelete removes the pending folder or bookmark.
func (a App) executeDelete() (tea.Model, tea.Cmd) {
	p := a.pending
	a.pending = PendingDelete{}
	a.mode = ModeNormal

	if p.IsFolder {
		err := a.service.DeleteFolder(p.Folder)
		a.reload()
		if err != nil {
			cmd := a.showError(err)
			return a, cmd
		}
		cmd := a.setMessage("Folder \""+p.Folder+"\" deleted!", MessageSuccess)
		return a, cmd
	}

	_, err := a.service.DeleteBookmark(p.Folder, p.Index)
	a.reload()
	if err != nil {
		cmd := a.showError(err)
		return a, cmd
	}
	cmd := a.setMessage("Bookmark deleted!", MessageSuccess)
	return a, cmd
}

func (a App) handleGrab(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Down):
		a.grab.MoveBy(1)
		a.cursor = a.grab.Pos

	case key.Matches(msg, a.keys.Up):
		a.grab.MoveBy(-1)
		a.cursor = a.grab.Pos

	case key.Matches(msg, a.keys.Submit):
		order := a.grab.Order
		changed := a.grab.Changed()
		pos := a.grab.Pos
		a.grab.Reset()
		a.mode = ModeNormal
		if !changed {
			return a, nil
		}
		err := a.service.Reorder(a.folder, order)
		a.reload()
		if err != nil {
			cmd := a.showError(err)
			return a, cmd
		}
		a.cursor = pos
		a.clampCursor()
		cmd := a.setMessage("Order saved!", MessageSuccess)
		return a, cmd

	case msg.Type == tea.KeyEsc:
		a.cursor = a.grab.Origin
		a.grab.Reset()
		a.mode = ModeNormal
	}

	return a, nil
}

// showError logs err and shows it as a message.
func (a *App) showError(err error) tea.Cmd {
	a.logger.Error("action failed", "folder", a.folder, "error", err)
	text := err.Error()
	switch {
	case errors.Is(err, storage.ErrQuotaExceeded):
		text = "Sync storage is full. Change not saved."
	case errors.Is(err, model.ErrFolderNotFound):
		text = "That folder no longer exists."
	case errors.Is(err, model.ErrIndexOutOfRange):
		text = "That bookmark no longer exists."
	case errors.Is(err, shelf.ErrStale):
		text = "Bookmarks changed elsewhere. List reloaded, nothing was changed."
	}
	return a.setMessage(text, MessageError)
}

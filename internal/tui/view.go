package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nikbrunner/shelf/internal/model"
	"github.com/nikbrunner/shelf/internal/tui/layout"
)

// renderView creates the complete view for the current mode.
func (a App) renderView() string {
	switch a.mode {
	case ModeHelp:
		return a.renderHelpOverlay()
	case ModeCreateFolder, ModeRenameFolder, ModeAddBookmark, ModeEditTitle,
		ModeConfirmDelete, ModeFetching:
		return a.renderModal()
	}

	listHeight := layout.CalculateListHeight(a.height, a.layoutConfig.List)
	itemWidth := layout.CalculateItemWidth(a.width, a.layoutConfig.List)

	var list string
	if a.view == ViewFolders {
		list = a.renderFolderList(itemWidth, listHeight)
	} else {
		list = a.renderBookmarkList(itemWidth, listHeight)
	}

	pane := a.styles.Pane.
		Width(itemWidth + 2).
		Height(listHeight).
		Render(list)

	content := a.styles.App.Render(
		lipgloss.JoinVertical(lipgloss.Left, a.renderHeader(), pane, a.renderHelpBar()),
	)

	// Use Place to ensure exact terminal dimensions and prevent overflow
	return lipgloss.Place(a.width, a.height, lipgloss.Left, lipgloss.Top, content)
}

// renderHeader renders the title line and, in the bookmark view, the search line.
func (a App) renderHeader() string {
	available := a.width - 4

	if a.view == ViewFolders {
		count := " (" + strconv.Itoa(len(a.folders)) + ")"
		return a.styles.Title.Render("Folders") + a.styles.Count.Render(count)
	}

	count := strconv.Itoa(len(a.matches))
	if a.search.Active() {
		count += "/" + strconv.Itoa(len(a.bookmarks))
	}
	name := layout.TruncateWithSuffix(a.folder, available, "", a.layoutConfig.Text)
	header := a.styles.Title.Render(name) + a.styles.Count.Render(" ("+count+")")

	switch {
	case a.mode == ModeSearch:
		header += "\n" + a.search.Input.View()
	case a.search.Active():
		header += "\n" + a.styles.Help.Render("/ "+a.search.Query)
	}
	return header
}

// renderFolderList renders one row per folder with its bookmark count.
func (a App) renderFolderList(width, height int) string {
	if len(a.folders) == 0 {
		return a.styles.Empty.Render("No folders created yet.")
	}

	visible := layout.CalculateVisibleItems(height, 1)
	offset := layout.CalculateViewportOffset(a.cursor, len(a.folders), visible)
	end := min(offset+visible, len(a.folders))

	var rows []string
	for i := offset; i < end; i++ {
		f := a.folders[i]
		suffix := " (" + strconv.Itoa(f.Count()) + ")"
		// Leave room for the style's left padding
		row := layout.TruncateWithSuffix(f.Name, width-1, suffix, a.layoutConfig.Text)
		if i == a.cursor {
			rows = append(rows, a.styles.ItemSelected.Width(width).Render(row))
		} else {
			rows = append(rows, a.styles.Item.Render(row))
		}
	}
	return strings.Join(rows, "\n")
}

// renderBookmarkList renders the visible bookmarks, in drag order while grabbing.
func (a App) renderBookmarkList(width, height int) string {
	if len(a.bookmarks) == 0 {
		return a.styles.Empty.Render("No bookmarks in this folder.")
	}
	if len(a.matches) == 0 {
		return a.styles.Empty.Render("No bookmarks match \"" + a.search.Query + "\".")
	}

	rows := a.bookmarkRows()
	visible := layout.CalculateVisibleItems(height, a.layoutConfig.List.LinesPerBookmark)
	offset := layout.CalculateViewportOffset(a.cursor, len(rows), visible)
	end := min(offset+visible, len(rows))

	var lines []string
	for i := offset; i < end; i++ {
		lines = append(lines, a.renderBookmark(rows[i], i == a.cursor, width))
	}
	return strings.Join(lines, "\n")
}

// bookmarkRows returns the bookmarks in display order.
func (a App) bookmarkRows() []model.Bookmark {
	if a.mode == ModeGrab && len(a.grab.Order) == len(a.bookmarks) {
		rows := make([]model.Bookmark, len(a.grab.Order))
		for i, idx := range a.grab.Order {
			rows[i] = a.bookmarks[idx]
		}
		return rows
	}

	rows := make([]model.Bookmark, len(a.matches))
	for i, m := range a.matches {
		rows[i] = m.Bookmark
	}
	return rows
}

// renderBookmark renders a title line and a URL line.
func (a App) renderBookmark(b model.Bookmark, isCursor bool, width int) string {
	title, _ := layout.TruncateText(b.DisplayTitle(), width-1, a.layoutConfig.Text)
	url, _ := layout.TruncateText(b.URL, width-3, a.layoutConfig.Text)

	var titleLine string
	switch {
	case isCursor && a.mode == ModeGrab:
		titleLine = a.styles.ItemGrabbed.Width(width).Render(title)
	case isCursor:
		titleLine = a.styles.ItemSelected.Width(width).Render(title)
	default:
		titleLine = a.styles.Item.Render(title)
	}
	return titleLine + "\n" + a.styles.URL.Render(url)
}

// renderModal renders the dialog for the current mode centered on screen.
func (a App) renderModal() string {
	var title, content strings.Builder

	modalWidth := layout.CalculateModalWidth(a.width, a.layoutConfig.Modal)
	modalStyle := a.styles.Modal.Width(modalWidth)

	switch a.mode {
	case ModeCreateFolder:
		title.WriteString("New Folder\n\n")
		content.WriteString("Name:\n")
		content.WriteString(a.modal.NameInput.View())

	case ModeRenameFolder:
		title.WriteString("Rename Folder\n\n")
		content.WriteString("Name:\n")
		content.WriteString(a.modal.NameInput.View())

	case ModeAddBookmark:
		title.WriteString("Add Bookmark to " + a.folder + "\n\n")
		content.WriteString("URL:\n")
		content.WriteString(a.modal.URLInput.View())
		content.WriteString("\n\n")
		content.WriteString("Title:\n")
		content.WriteString(a.modal.TitleInput.View())
		if a.fetchTitle != nil {
			content.WriteString("\n\n")
			content.WriteString(a.styles.Help.Render("Leave the title empty to use the page title."))
		}

	case ModeEditTitle:
		title.WriteString("Edit Title\n\n")
		content.WriteString("Title:\n")
		content.WriteString(a.modal.TitleInput.View())

	case ModeConfirmDelete:
		title.WriteString("Confirm\n\n")
		content.WriteString(a.pending.Prompt())
		content.WriteString("\n\n")
		content.WriteString(a.styles.Help.Render("This action cannot be undone."))

	case ModeFetching:
		title.WriteString("Add Bookmark\n\n")
		content.WriteString("URL:\n")
		content.WriteString(a.styles.URL.Render(a.modal.URLInput.Value()) + "\n\n")
		content.WriteString(a.styles.Empty.Render("Fetching title..."))
	}

	modalContent := a.styles.Title.Render(title.String()) + content.String()

	// Place modal in center, then add help bar at bottom
	modal := lipgloss.Place(
		a.width,
		a.height-3, // Leave room for help bar
		lipgloss.Center,
		lipgloss.Center,
		modalStyle.Render(modalContent),
	)

	return lipgloss.JoinVertical(lipgloss.Left, modal, a.renderHelpBar())
}

// renderHelpBar renders the message line above the contextual hints.
func (a App) renderHelpBar() string {
	var lines []string

	// Empty spacer OR message (message replaces the gap)
	if a.messageText != "" {
		lines = append(lines, a.renderMessageLine())
	} else {
		lines = append(lines, "")
	}

	if hints := a.renderHints(a.getContextualHints(), a.width-4); hints != "" {
		lines = append(lines, hints)
	}

	if a.mode == ModeNormal {
		lines = append(lines, a.renderStatus())
	}

	return strings.Join(lines, "\n")
}

// renderMessageLine renders the styled message with prefix icon based on type.
func (a App) renderMessageLine() string {
	switch a.messageType {
	case MessageError:
		return a.styles.MsgError.Render("✗ " + a.messageText)
	case MessageWarning:
		return a.styles.MsgWarning.Render("⚠ " + a.messageText)
	case MessageSuccess:
		return a.styles.MsgSuccess.Render("✓ " + a.messageText)
	default:
		return a.styles.MsgInfo.Render(a.messageText)
	}
}

// renderStatus renders the [cfm:X] indicator.
func (a App) renderStatus() string {
	if a.confirmDelete {
		return a.styles.Help.Render("[cfm:on]")
	}
	return a.styles.Help.Render("[cfm:off]")
}

func (a App) renderHelpOverlay() string {
	modalStyle := lipgloss.NewStyle().
		Padding(1, 2)

	var left strings.Builder
	left.WriteString(a.styles.Title.Render("nav") + "\n")
	left.WriteString("j/k  move\n")
	left.WriteString("l    open folder\n")
	left.WriteString("h    back\n")
	left.WriteString("gg   top\n")
	left.WriteString("G    bottom\n")
	left.WriteString("\n")
	left.WriteString(a.styles.Title.Render("folders") + "\n")
	left.WriteString("a    new folder\n")
	left.WriteString("e    rename\n")
	left.WriteString("d    delete\n")

	var right strings.Builder
	right.WriteString(a.styles.Title.Render("bookmarks") + "\n")
	right.WriteString("a    add\n")
	right.WriteString("e    edit title\n")
	right.WriteString("d    delete\n")
	right.WriteString("/    search\n")
	right.WriteString("m    drag\n")
	right.WriteString("J/K  move down/up\n")
	right.WriteString("o    open url\n")
	right.WriteString("Y    yank url\n")
	right.WriteString("\n")
	right.WriteString(a.styles.Title.Render("misc") + "\n")
	right.WriteString("c    confirm toggle\n")
	right.WriteString("\n")
	right.WriteString(a.styles.Help.Render("[?/q/esc] close"))

	colWidth := a.layoutConfig.Modal.HelpColumnWidth
	leftCol := lipgloss.NewStyle().Width(colWidth).Render(left.String())
	rightCol := lipgloss.NewStyle().Width(colWidth).Render(right.String())
	cols := lipgloss.JoinHorizontal(lipgloss.Top, leftCol, "  ", rightCol)

	return lipgloss.Place(
		a.width,
		a.height,
		lipgloss.Left,
		lipgloss.Top,
		modalStyle.Render(cols),
	)
}

package tui_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nikbrunner/shelf/internal/shelf"
	"github.com/nikbrunner/shelf/internal/storage"
	"github.com/nikbrunner/shelf/internal/tui"
)

// newTestService returns a service over a fresh memory area with the given folders.
func newTestService(t *testing.T, area storage.Area, folders ...string) *shelf.Service {
	t.Helper()
	svc, err := shelf.NewService(shelf.ServiceParams{Storage: storage.NewSyncStorage(area)})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	for _, name := range folders {
		if err := svc.CreateFolder(name); err != nil {
			t.Fatalf("CreateFolder(%q): %v", name, err)
		}
	}
	return svc
}

func addPages(t *testing.T, svc *shelf.Service, folder string, pages ...shelf.Page) {
	t.Helper()
	for _, p := range pages {
		if _, err := svc.AddBookmark(folder, p); err != nil {
			t.Fatalf("AddBookmark(%q): %v", p.URL, err)
		}
	}
}

func bookmarkTitles(t *testing.T, svc *shelf.Service, folder string) []string {
	t.Helper()
	bookmarks, err := svc.Bookmarks(folder)
	if err != nil {
		t.Fatalf("Bookmarks(%q): %v", folder, err)
	}
	var out []string
	for _, b := range bookmarks {
		out = append(out, b.Title)
	}
	return out
}

// keyMsg converts a key name to a tea.KeyMsg.
func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

// press sends each key in order and returns the app and the last command.
func press(app tui.App, keys ...string) (tui.App, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		var updated tea.Model
		updated, cmd = app.Update(keyMsg(k))
		app = updated.(tui.App)
	}
	return app, cmd
}

// typeText sends s one rune at a time.
func typeText(app tui.App, s string) tui.App {
	for _, r := range s {
		app, _ = press(app, string(r))
	}
	return app
}

func clearInput(app tui.App, n int) tui.App {
	for i := 0; i < n; i++ {
		app, _ = press(app, "backspace")
	}
	return app
}

func sampleService(t *testing.T) *shelf.Service {
	svc := newTestService(t, storage.NewMemoryArea(), "Work", "Reading")
	addPages(t, svc, "Work",
		shelf.Page{Title: "Go", URL: "https://go.dev"},
		shelf.Page{Title: "Docs", URL: "https://pkg.go.dev"},
		shelf.Page{Title: "Issues", URL: "https://github.com/golang/go/issues"},
	)
	return svc
}

func TestApp_Navigation_JK(t *testing.T) {
	app := tui.NewApp(tui.AppParams{Service: newTestService(t, storage.NewMemoryArea(), "A", "B", "C")})

	if app.Cursor() != 0 {
		t.Errorf("expected initial cursor 0, got %d", app.Cursor())
	}

	app, _ = press(app, "j")
	if app.Cursor() != 1 {
		t.Errorf("after j, expected cursor 1, got %d", app.Cursor())
	}

	app, _ = press(app, "k", "k")
	if app.Cursor() != 0 {
		t.Errorf("k at top should stay at 0, got %d", app.Cursor())
	}

	app, _ = press(app, "G")
	if app.Cursor() != 2 {
		t.Errorf("after G, expected cursor 2, got %d", app.Cursor())
	}

	app, _ = press(app, "j")
	if app.Cursor() != 2 {
		t.Errorf("j at bottom should stay at 2, got %d", app.Cursor())
	}

	app, _ = press(app, "g", "g")
	if app.Cursor() != 0 {
		t.Errorf("after gg, expected cursor 0, got %d", app.Cursor())
	}
}

func TestApp_OpenFolderAndBack(t *testing.T) {
	app := tui.NewApp(tui.AppParams{Service: sampleService(t)})

	app, _ = press(app, "l")
	if app.CurrentView() != tui.ViewBookmarks || app.CurrentFolder() != "Work" {
		t.Fatalf("expected bookmark view of Work, got view %d folder %q", app.CurrentView(), app.CurrentFolder())
	}
	if !strings.Contains(app.View(), "pkg.go.dev") {
		t.Error("bookmark view should show URLs")
	}

	app, _ = press(app, "j", "h")
	if app.CurrentView() != tui.ViewFolders {
		t.Fatalf("h should go back to the folder view")
	}
	if app.Cursor() != 0 {
		t.Errorf("cursor should be on the folder just left, got %d", app.Cursor())
	}
	if !strings.Contains(app.View(), "Work (3)") {
		t.Error("folder view should show bookmark counts")
	}
}

func TestApp_EmptyStates(t *testing.T) {
	app := tui.NewApp(tui.AppParams{Service: newTestService(t, storage.NewMemoryArea())})
	if !strings.Contains(app.View(), "No folders created yet.") {
		t.Error("expected empty folder list text")
	}

	app = tui.NewApp(tui.AppParams{Service: newTestService(t, storage.NewMemoryArea(), "Empty")})
	app, _ = press(app, "l")
	if !strings.Contains(app.View(), "No bookmarks in this folder.") {
		t.Error("expected empty bookmark list text")
	}
}

func TestApp_CreateFolder(t *testing.T) {
	area := storage.NewMemoryArea()
	svc := newTestService(t, area)
	app := tui.NewApp(tui.AppParams{Service: svc})

	app, _ = press(app, "a")
	if app.Mode() != tui.ModeCreateFolder {
		t.Fatalf("expected create folder mode, got %s", app.Mode())
	}

	app = typeText(app, "Work")
	app, _ = press(app, "enter")

	if app.Mode() != tui.ModeNormal {
		t.Errorf("expected normal mode after create, got %s", app.Mode())
	}
	if app.CurrentFolder() != "Work" {
		t.Errorf("new folder should be opened, got %q", app.CurrentFolder())
	}
	if app.Message() != `Folder "Work" created!` {
		t.Errorf("unexpected message %q", app.Message())
	}

	reloaded := newTestService(t, area)
	if names := reloaded.Store().FolderNames(); len(names) != 1 || names[0] != "Work" {
		t.Errorf("folder not persisted, got %v", names)
	}
}

func TestApp_CreateFolderRejected(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		message string
	}{
		{name: "empty", input: "   ", message: "Please enter a folder name."},
		{name: "duplicate", input: "Work", message: `Folder "Work" already exists!`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := tui.NewApp(tui.AppParams{Service: newTestService(t, storage.NewMemoryArea(), "Work")})

			app, _ = press(app, "a")
			app = typeText(app, tt.input)
			app, _ = press(app, "enter")

			if app.Mode() != tui.ModeCreateFolder {
				t.Errorf("dialog should stay open, got mode %s", app.Mode())
			}
			if app.Message() != tt.message {
				t.Errorf("message = %q, want %q", app.Message(), tt.message)
			}
		})
	}
}

func TestApp_RenameFolder(t *testing.T) {
	svc := newTestService(t, storage.NewMemoryArea(), "Work", "Reading")
	app := tui.NewApp(tui.AppParams{Service: svc})

	app, _ = press(app, "e")
	if app.Mode() != tui.ModeRenameFolder {
		t.Fatalf("expected rename mode, got %s", app.Mode())
	}
	app = clearInput(app, len("Work"))
	app = typeText(app, "Jobs")
	app, _ = press(app, "enter")

	if app.Message() != `Folder renamed to "Jobs"!` {
		t.Errorf("unexpected message %q", app.Message())
	}
	names := svc.Store().FolderNames()
	if len(names) != 2 || names[0] != "Jobs" || names[1] != "Reading" {
		t.Errorf("rename should keep position, got %v", names)
	}
}

func TestApp_RenameFolderToExisting(t *testing.T) {
	svc := newTestService(t, storage.NewMemoryArea(), "Work", "Reading")
	app := tui.NewApp(tui.AppParams{Service: svc})

	app, _ = press(app, "e")
	app = clearInput(app, len("Work"))
	app = typeText(app, "Reading")
	app, _ = press(app, "enter")

	if app.Message() != "A folder with that name already exists!" {
		t.Errorf("unexpected message %q", app.Message())
	}
	if app.Mode() != tui.ModeRenameFolder {
		t.Errorf("dialog should stay open, got %s", app.Mode())
	}
}

func TestApp_DeleteFolderWithConfirm(t *testing.T) {
	svc := sampleService(t)
	app := tui.NewApp(tui.AppParams{Service: svc})

	app, _ = press(app, "d")
	if app.Mode() != tui.ModeConfirmDelete {
		t.Fatalf("expected confirm mode, got %s", app.Mode())
	}
	if !strings.Contains(app.View(), `Delete "Work"`) {
		t.Error("confirm dialog should name the folder")
	}

	app, _ = press(app, "n")
	if len(svc.Folders()) != 2 {
		t.Fatal("n should cancel the delete")
	}

	app, _ = press(app, "d", "y")
	if app.Message() != `Folder "Work" deleted!` {
		t.Errorf("unexpected message %q", app.Message())
	}
	if names := svc.Store().FolderNames(); len(names) != 1 || names[0] != "Reading" {
		t.Errorf("expected only Reading left, got %v", names)
	}
}

func TestApp_DeleteBookmarkWithoutConfirm(t *testing.T) {
	svc := sampleService(t)
	app := tui.NewApp(tui.AppParams{Service: svc})

	app, _ = press(app, "c")
	if app.ConfirmDelete() {
		t.Fatal("c should turn confirmation off")
	}

	app, _ = press(app, "l", "j", "d")
	if app.Mode() != tui.ModeNormal {
		t.Errorf("delete should not ask, got mode %s", app.Mode())
	}
	if app.Message() != "Bookmark deleted!" {
		t.Errorf("unexpected message %q", app.Message())
	}
	got := bookmarkTitles(t, svc, "Work")
	if len(got) != 2 || got[0] != "Go" || got[1] != "Issues" {
		t.Errorf("expected Docs removed, got %v", got)
	}
}

func TestApp_SkipDeleteConfirmConfig(t *testing.T) {
	cfg := storage.DefaultConfig()
	cfg.SkipDeleteConfirm = true
	app := tui.NewApp(tui.AppParams{Service: sampleService(t), Config: &cfg})

	if app.ConfirmDelete() {
		t.Error("SkipDeleteConfirm should disable confirmation")
	}
}

func TestApp_AddBookmark(t *testing.T) {
	svc := newTestService(t, storage.NewMemoryArea(), "Work")
	app := tui.NewApp(tui.AppParams{Service: svc})

	app, _ = press(app, "l", "a")
	if app.Mode() != tui.ModeAddBookmark {
		t.Fatalf("expected add mode, got %s", app.Mode())
	}

	app = typeText(app, "https://go.dev")
	app, _ = press(app, "tab")
	app = typeText(app, "Go")
	app, _ = press(app, "enter")

	if app.Message() != `"Go" added!` {
		t.Errorf("unexpected message %q", app.Message())
	}
	got := bookmarkTitles(t, svc, "Work")
	if len(got) != 1 || got[0] != "Go" {
		t.Errorf("expected [Go], got %v", got)
	}
}

func TestApp_AddBookmarkRequiresURL(t *testing.T) {
	app := tui.NewApp(tui.AppParams{Service: newTestService(t, storage.NewMemoryArea(), "Work")})

	app, _ = press(app, "l", "a", "enter")

	if app.Mode() != tui.ModeAddBookmark {
		t.Errorf("dialog should stay open, got %s", app.Mode())
	}
	if app.Message() != "Please enter a URL." {
		t.Errorf("unexpected message %q", app.Message())
	}
}

func TestApp_AddBookmarkFetchesTitle(t *testing.T) {
	tests := []struct {
		name  string
		fetch tui.TitleFunc
		want  string
	}{
		{
			name: "fetched",
			fetch: func(ctx context.Context, url string) (string, error) {
				return "The Go Programming Language", nil
			},
			want: "The Go Programming Language",
		},
		{
			name: "fetch failed",
			fetch: func(ctx context.Context, url string) (string, error) {
				return "", errors.New("timeout")
			},
			want: "https://go.dev",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(t, storage.NewMemoryArea(), "Work")
			app := tui.NewApp(tui.AppParams{Service: svc, FetchTitle: tt.fetch})

			app, _ = press(app, "l", "a")
			app = typeText(app, "https://go.dev")
			app, cmd := press(app, "enter")

			if app.Mode() != tui.ModeFetching {
				t.Fatalf("expected fetching mode, got %s", app.Mode())
			}
			if cmd == nil {
				t.Fatal("expected a fetch command")
			}

			updated, _ := app.Update(cmd())
			app = updated.(tui.App)

			if app.Mode() != tui.ModeNormal {
				t.Errorf("expected normal mode after fetch, got %s", app.Mode())
			}
			got := bookmarkTitles(t, svc, "Work")
			if len(got) != 1 || got[0] != tt.want {
				t.Errorf("expected [%s], got %v", tt.want, got)
			}
		})
	}
}

func TestApp_FetchCancelled(t *testing.T) {
	svc := newTestService(t, storage.NewMemoryArea(), "Work")
	fetch := func(ctx context.Context, url string) (string, error) { return "Late", nil }
	app := tui.NewApp(tui.AppParams{Service: svc, FetchTitle: fetch})

	app, _ = press(app, "l", "a")
	app = typeText(app, "https://go.dev")
	app, cmd := press(app, "enter")
	app, _ = press(app, "esc")

	updated, _ := app.Update(cmd())
	app = updated.(tui.App)

	if got := bookmarkTitles(t, svc, "Work"); len(got) != 0 {
		t.Errorf("cancelled fetch must not add a bookmark, got %v", got)
	}
	if app.Mode() != tui.ModeNormal {
		t.Errorf("expected normal mode, got %s", app.Mode())
	}
}

func TestApp_SupersededFetchIgnored(t *testing.T) {
	svc := newTestService(t, storage.NewMemoryArea(), "Work")
	fetch := func(ctx context.Context, url string) (string, error) { return "Title of " + url, nil }
	app := tui.NewApp(tui.AppParams{Service: svc, FetchTitle: fetch})

	app, _ = press(app, "l", "a")
	app = typeText(app, "https://old.test")
	app, oldCmd := press(app, "enter")
	app, _ = press(app, "esc", "a")
	app = typeText(app, "https://new.test")
	app, newCmd := press(app, "enter")

	updated, _ := app.Update(oldCmd())
	app = updated.(tui.App)
	if got := bookmarkTitles(t, svc, "Work"); len(got) != 0 {
		t.Fatalf("result of the cancelled lookup must be dropped, got %v", got)
	}
	if app.Mode() != tui.ModeFetching {
		t.Fatalf("second lookup should still be pending, got %s", app.Mode())
	}

	updated, _ = app.Update(newCmd())
	app = updated.(tui.App)
	got := bookmarkTitles(t, svc, "Work")
	if len(got) != 1 || got[0] != "Title of https://new.test" {
		t.Errorf("expected only the second page added, got %v", got)
	}
}

func TestApp_SpaceQueryFilters(t *testing.T) {
	app := tui.NewApp(tui.AppParams{Service: sampleService(t)})

	app, _ = press(app, "l", "/", " ", "enter")
	if app.SearchQuery() != " " {
		t.Fatalf("query = %q", app.SearchQuery())
	}
	if strings.Contains(app.View(), "pkg.go.dev") {
		t.Error("no sample bookmark contains a space, so none should be listed")
	}

	app, _ = press(app, "m")
	if app.Mode() == tui.ModeGrab {
		t.Error("grab must stay off while a query filters the list")
	}
}

func TestApp_SaveFailureShowsError(t *testing.T) {
	area := storage.WithQuota(storage.NewMemoryArea(), storage.Quota{ItemBytes: 64})
	svc := newTestService(t, area, "F")
	app := tui.NewApp(tui.AppParams{Service: svc})

	app, _ = press(app, "l", "a")
	app = typeText(app, "https://example.com/a/very/long/path/that/cannot/fit")
	app, _ = press(app, "tab")
	app = typeText(app, "long")
	app, _ = press(app, "enter")

	if app.Message() != "Sync storage is full. Change not saved." {
		t.Errorf("unexpected message %q", app.Message())
	}
	if got := bookmarkTitles(t, svc, "F"); len(got) != 0 {
		t.Errorf("rejected add must not change the store, got %v", got)
	}
}

func TestApp_Search(t *testing.T) {
	app := tui.NewApp(tui.AppParams{Service: sampleService(t)})

	app, _ = press(app, "l", "/")
	if app.Mode() != tui.ModeSearch {
		t.Fatalf("expected search mode, got %s", app.Mode())
	}

	app = typeText(app, "GITHUB")
	if app.SearchQuery() != "GITHUB" {
		t.Errorf("query = %q", app.SearchQuery())
	}
	view := app.View()
	if !strings.Contains(view, "Issues") || strings.Contains(view, "pkg.go.dev") {
		t.Error("search should match URLs case-insensitively and hide the rest")
	}

	app, _ = press(app, "enter")
	if app.Mode() != tui.ModeNormal || app.SearchQuery() != "GITHUB" {
		t.Errorf("enter should keep the query, got mode %s query %q", app.Mode(), app.SearchQuery())
	}

	app, _ = press(app, "/", "esc")
	if app.SearchQuery() != "" {
		t.Errorf("esc should clear the query, got %q", app.SearchQuery())
	}
	if !strings.Contains(app.View(), "pkg.go.dev") {
		t.Error("cleared search should show every bookmark")
	}
}

func TestApp_EditTitleOfSearchResult(t *testing.T) {
	svc := sampleService(t)
	app := tui.NewApp(tui.AppParams{Service: svc})

	app, _ = press(app, "l", "/")
	app = typeText(app, "docs")
	app, _ = press(app, "enter", "e")
	if app.Mode() != tui.ModeEditTitle {
		t.Fatalf("expected edit mode, got %s", app.Mode())
	}

	app = clearInput(app, len("Docs"))
	app = typeText(app, "Packages")
	app, _ = press(app, "enter")

	if app.Message() != "Bookmark updated!" {
		t.Errorf("unexpected message %q", app.Message())
	}
	got := bookmarkTitles(t, svc, "Work")
	if len(got) != 3 || got[1] != "Packages" {
		t.Errorf("search row must edit the original bookmark, got %v", got)
	}
}

func TestApp_EditTitleRejectsEmpty(t *testing.T) {
	app := tui.NewApp(tui.AppParams{Service: sampleService(t)})

	app, _ = press(app, "l", "e")
	app = clearInput(app, len("Go"))
	app, _ = press(app, "enter")

	if app.Message() != "Please enter a title." {
		t.Errorf("unexpected message %q", app.Message())
	}
	if app.Mode() != tui.ModeEditTitle {
		t.Errorf("dialog should stay open, got %s", app.Mode())
	}
}

func TestApp_GrabRefusedWhileSearching(t *testing.T) {
	app := tui.NewApp(tui.AppParams{Service: sampleService(t)})

	app, _ = press(app, "l", "/")
	app = typeText(app, "go")
	app, _ = press(app, "enter", "m")

	if app.Mode() == tui.ModeGrab {
		t.Error("grab should be refused while searching")
	}
	if app.Message() != "Clear the search to reorder bookmarks." {
		t.Errorf("unexpected message %q", app.Message())
	}
}

func TestApp_GrabReorders(t *testing.T) {
	svc := sampleService(t)
	app := tui.NewApp(tui.AppParams{Service: svc})

	app, _ = press(app, "l", "m")
	if app.Mode() != tui.ModeGrab {
		t.Fatalf("expected grab mode, got %s", app.Mode())
	}

	app, _ = press(app, "j", "j", "enter")
	if app.Message() != "Order saved!" {
		t.Errorf("unexpected message %q", app.Message())
	}
	if app.Cursor() != 2 {
		t.Errorf("cursor should follow the dropped bookmark, got %d", app.Cursor())
	}
	got := bookmarkTitles(t, svc, "Work")
	want := []string{"Docs", "Issues", "Go"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestApp_GrabCancel(t *testing.T) {
	svc := sampleService(t)
	app := tui.NewApp(tui.AppParams{Service: svc})

	app, _ = press(app, "l", "m", "j", "esc")

	if app.Mode() != tui.ModeNormal {
		t.Errorf("esc should end the drag, got %s", app.Mode())
	}
	if app.Cursor() != 0 {
		t.Errorf("cursor should return to the origin, got %d", app.Cursor())
	}
	if got := bookmarkTitles(t, svc, "Work"); got[0] != "Go" {
		t.Errorf("cancelled drag must not reorder, got %v", got)
	}
}

func TestApp_MoveBookmarkStep(t *testing.T) {
	svc := sampleService(t)
	app := tui.NewApp(tui.AppParams{Service: svc})

	app, _ = press(app, "l", "J")
	if app.Cursor() != 1 {
		t.Errorf("cursor should follow the moved bookmark, got %d", app.Cursor())
	}
	if got := bookmarkTitles(t, svc, "Work"); got[0] != "Docs" || got[1] != "Go" {
		t.Errorf("J should move down one, got %v", got)
	}

	app, _ = press(app, "K")
	if got := bookmarkTitles(t, svc, "Work"); got[0] != "Go" {
		t.Errorf("K should move back up, got %v", got)
	}
}

func TestApp_OpenAndCopyURL(t *testing.T) {
	var opened, copied string
	app := tui.NewApp(tui.AppParams{
		Service: sampleService(t),
		OpenURL: func(u string) error { opened = u; return nil },
		CopyURL: func(u string) error { copied = u; return nil },
	})

	app, _ = press(app, "l", "j", "o")
	if opened != "https://pkg.go.dev" {
		t.Errorf("opened %q", opened)
	}

	app, _ = press(app, "Y")
	if copied != "https://pkg.go.dev" {
		t.Errorf("copied %q", copied)
	}
	if app.Message() != "URL copied!" {
		t.Errorf("unexpected message %q", app.Message())
	}
}

func TestApp_BackPicksUpExternalChanges(t *testing.T) {
	area := storage.NewMemoryArea()
	svc := newTestService(t, area, "Work")
	other := newTestService(t, area)
	app := tui.NewApp(tui.AppParams{Service: svc})

	app, _ = press(app, "l")
	if err := other.CreateFolder("FromElsewhere"); err != nil {
		t.Fatal(err)
	}
	app, _ = press(app, "h")

	if !strings.Contains(app.View(), "FromElsewhere") {
		t.Error("going back should show folders written by another writer")
	}
}

func TestApp_DeleteAfterExternalChangeIsRejected(t *testing.T) {
	area := storage.NewMemoryArea()
	svc := newTestService(t, area, "Work")
	addPages(t, svc, "Work",
		shelf.Page{Title: "Go", URL: "https://go.dev"},
		shelf.Page{Title: "Docs", URL: "https://pkg.go.dev"},
	)
	other := newTestService(t, area)
	app := tui.NewApp(tui.AppParams{Service: svc})

	app, _ = press(app, "l")
	if _, err := other.DeleteBookmark("Work", 0); err != nil {
		t.Fatal(err)
	}

	// cursor is still on Go, which is already gone
	app, _ = press(app, "d", "y")

	if app.Message() != "Bookmarks changed elsewhere. List reloaded, nothing was changed." {
		t.Errorf("unexpected message %q", app.Message())
	}
	got := bookmarkTitles(t, svc, "Work")
	if len(got) != 1 || got[0] != "Docs" {
		t.Errorf("Docs must survive a delete aimed at Go, got %v", got)
	}
	if view := app.View(); !strings.Contains(view, "Docs") {
		t.Errorf("list should be reloaded, got:\n%s", view)
	}
}

func TestApp_HelpQCloses(t *testing.T) {
	app := tui.NewApp(tui.AppParams{Service: sampleService(t)})

	app, _ = press(app, "?")
	view := app.View()
	if !strings.Contains(view, "[?/q/esc] close") || strings.Contains(view, "quit") {
		t.Errorf("help footer must only offer close, got:\n%s", view)
	}

	app, cmd := press(app, "q")
	if app.Mode() != tui.ModeNormal {
		t.Errorf("q should close help, got %s", app.Mode())
	}
	if cmd != nil {
		t.Error("q in help must not quit")
	}
}

func TestApp_Help(t *testing.T) {
	app := tui.NewApp(tui.AppParams{Service: sampleService(t)})

	app, _ = press(app, "?")
	if app.Mode() != tui.ModeHelp {
		t.Fatalf("expected help mode, got %s", app.Mode())
	}
	app, _ = press(app, "?")
	if app.Mode() != tui.ModeNormal {
		t.Errorf("? should close help, got %s", app.Mode())
	}
}

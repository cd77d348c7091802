// Package shelf owns the bookmark store and keeps it in step with storage.
package shelf

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"sync"

	"github.com/nikbrunner/shelf/internal/model"
	"github.com/nikbrunner/shelf/internal/search"
	"github.com/nikbrunner/shelf/internal/storage"
)

// ErrStale is returned by index-based mutations when another writer changed
// the folder since it was last read. The store is reloaded; the caller must
// re-read the folder before retrying.
var ErrStale = errors.New("folder changed elsewhere")

// Page is the page a new bookmark is created from.
type Page struct {
	Title string
	URL   string
}

// Service holds the in-memory store and persists every mutation.
// Each mutation reloads first when another writer has saved since the last
// read, and only replaces the in-memory store once the save succeeded.
type Service struct {
	mu       sync.Mutex
	storage  storage.Storage
	store    *model.Store
	revision string
	logger   *slog.Logger
}

// ServiceParams holds the dependencies of a Service.
type ServiceParams struct {
	Storage storage.Storage
	Logger  *slog.Logger // nil discards logs
}

// NewService loads the store from storage.
func NewService(params ServiceParams) (*Service, error) {
	logger := params.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	snap, err := params.Storage.Load()
	if err != nil {
		return nil, fmt.Errorf("load store: %w", err)
	}

	logger.Debug("store loaded", "folders", snap.Store.Len(), "revision", snap.Revision)
	return &Service{
		storage:  params.Storage,
		store:    snap.Store,
		revision: snap.Revision,
		logger:   logger,
	}, nil
}

// Store returns a copy of the current store.
func (s *Service) Store() *model.Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Clone()
}

// Folders returns all folders in display order.
func (s *Service) Folders() []model.Folder {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Folders()
}

// Bookmarks returns the bookmarks of a folder.
func (s *Service) Bookmarks(folder string) ([]model.Bookmark, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Bookmarks(folder)
}

// Search filters a folder by case-insensitive substring on title or URL.
func (s *Service) Search(folder, query string) ([]search.Match, error) {
	bookmarks, err := s.Bookmarks(folder)
	if err != nil {
		return nil, err
	}
	return search.FilterFolder(bookmarks, query), nil
}

// Refresh re-reads storage when it changed since the last read.
// Reports whether the in-memory store was replaced.
func (s *Service) Refresh() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.syncLocked()
}

// CreateFolder adds an empty folder after the existing ones.
func (s *Service) CreateFolder(name string) error {
	return s.mutate("create folder", func(store *model.Store) error {
		return store.CreateFolder(name)
	}, "folder", name)
}

// RenameFolder renames a folder in place.
func (s *Service) RenameFolder(oldName, newName string) error {
	return s.mutate("rename folder", func(store *model.Store) error {
		return store.RenameFolder(oldName, newName)
	}, "from", oldName, "to", newName)
}

// DeleteFolder removes a folder and all of its bookmarks.
func (s *Service) DeleteFolder(name string) error {
	return s.mutate("delete folder", func(store *model.Store) error {
		return store.DeleteFolder(name)
	}, "folder", name)
}

// AddBookmark appends a bookmark for page to folder.
// An empty title falls back to the page URL.
func (s *Service) AddBookmark(folder string, page Page) (model.Bookmark, error) {
	b := model.NewBookmark(model.NewBookmarkParams{Title: page.Title, URL: page.URL})
	if b.Title == "" {
		b.Title = b.URL
	}
	err := s.mutate("add bookmark", func(store *model.Store) error {
		return store.AddBookmark(folder, b)
	}, "folder", folder, "url", b.URL)
	return b, err
}

// EditTitle changes the title of the bookmark at index.
func (s *Service) EditTitle(folder string, index int, title string) error {
	return s.mutateFolder("edit title", folder, func(store *model.Store) error {
		return store.EditBookmarkTitle(folder, index, title)
	}, "folder", folder, "index", index)
}

// DeleteBookmark removes the bookmark at index and returns it.
func (s *Service) DeleteBookmark(folder string, index int) (model.Bookmark, error) {
	var removed model.Bookmark
	err := s.mutateFolder("delete bookmark", folder, func(store *model.Store) error {
		var err error
		removed, err = store.DeleteBookmark(folder, index)
		return err
	}, "folder", folder, "index", index)
	return removed, err
}

// MoveBookmark moves the bookmark at from so it ends up at to.
func (s *Service) MoveBookmark(folder string, from, to int) error {
	return s.mutateFolder("move bookmark", folder, func(store *model.Store) error {
		return store.MoveBookmark(folder, from, to)
	}, "folder", folder, "from", from, "to", to)
}

// Reorder rearranges a folder; order[i] is the old index of the new i-th bookmark.
func (s *Service) Reorder(folder string, order []int) error {
	return s.mutateFolder("reorder", folder, func(store *model.Store) error {
		return store.Reorder(folder, order)
	}, "folder", folder)
}

// Import merges other into the store, skipping bookmarks whose URL is
// already in the target folder.
func (s *Service) Import(other *model.Store) (added, skipped int, err error) {
	err = s.mutate("import", func(store *model.Store) error {
		added, skipped = store.Merge(other)
		return nil
	}, "folders", other.Len())
	return added, skipped, err
}

// mutate applies fn to a copy of the freshest store and saves it.
func (s *Service) mutate(op string, fn func(*model.Store) error, attrs ...any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.syncLocked(); err != nil {
		return err
	}
	return s.applyLocked(op, fn, attrs...)
}

// mutateFolder is mutate for operations that address bookmarks by index.
// It fails with ErrStale when a reload changed folder, since the caller's
// indexes no longer point at the bookmarks it saw.
func (s *Service) mutateFolder(op, folder string, fn func(*model.Store) error, attrs ...any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen, seenErr := s.store.Bookmarks(folder)
	reloaded, err := s.syncLocked()
	if err != nil {
		return err
	}
	if reloaded {
		now, nowErr := s.store.Bookmarks(folder)
		if (seenErr == nil) != (nowErr == nil) || !slices.Equal(seen, now) {
			s.logger.Info(op+" rejected", append(attrs, "error", ErrStale)...)
			return fmt.Errorf("%s: %w", op, ErrStale)
		}
	}
	return s.applyLocked(op, fn, attrs...)
}

// applyLocked saves fn applied to a copy of the store. Caller holds mu.
func (s *Service) applyLocked(op string, fn func(*model.Store) error, attrs ...any) error {
	next := s.store.Clone()
	if err := fn(next); err != nil {
		s.logger.Debug(op+" rejected", append(attrs, "error", err)...)
		return err
	}

	revision, err := s.storage.Save(next)
	if err != nil {
		s.logger.Error(op+" not saved", append(attrs, "error", err)...)
		return fmt.Errorf("%s: %w", op, err)
	}

	s.store = next
	s.revision = revision
	s.logger.Info(op, attrs...)
	return nil
}

// syncLocked reloads the store when the stored revision moved. Caller holds mu.
func (s *Service) syncLocked() (bool, error) {
	revision, err := s.storage.Revision()
	if err != nil {
		return false, fmt.Errorf("check revision: %w", err)
	}
	if revision == s.revision {
		return false, nil
	}

	snap, err := s.storage.Load()
	if err != nil {
		return false, fmt.Errorf("reload store: %w", err)
	}
	s.logger.Info("store changed externally", "revision", snap.Revision)
	s.store = snap.Store
	s.revision = snap.Revision
	return true, nil
}

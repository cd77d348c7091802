package model

import (
	"fmt"
	"strings"
)

// Store maps folder names to ordered bookmark lists.
// Folders keep the order they were created in.
// The zero value is an empty store ready to use.
type Store struct {
	names []string
	lists map[string][]Bookmark
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{
		names: []string{},
		lists: map[string][]Bookmark{},
	}
}

func (s *Store) init() {
	if s.lists == nil {
		s.lists = map[string][]Bookmark{}
	}
}

// Len returns the number of folders.
func (s *Store) Len() int {
	return len(s.names)
}

// FolderNames returns folder names in display order.
func (s *Store) FolderNames() []string {
	names := make([]string, len(s.names))
	copy(names, s.names)
	return names
}

// Folders returns copies of all folders in display order.
func (s *Store) Folders() []Folder {
	folders := make([]Folder, 0, len(s.names))
	for _, name := range s.names {
		folders = append(folders, Folder{Name: name, Bookmarks: cloneList(s.lists[name])})
	}
	return folders
}

// HasFolder reports whether a folder with the exact name exists.
func (s *Store) HasFolder(name string) bool {
	_, ok := s.lists[name]
	return ok
}

// Folder returns a copy of the named folder.
func (s *Store) Folder(name string) (Folder, bool) {
	list, ok := s.lists[name]
	if !ok {
		return Folder{}, false
	}
	return Folder{Name: name, Bookmarks: cloneList(list)}, true
}

// Bookmarks returns a copy of the bookmarks in a folder.
func (s *Store) Bookmarks(folder string) ([]Bookmark, error) {
	list, ok := s.lists[folder]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrFolderNotFound, folder)
	}
	return cloneList(list), nil
}

// Count returns the number of bookmarks in a folder, 0 if it doesn't exist.
func (s *Store) Count(folder string) int {
	return len(s.lists[folder])
}

// TotalBookmarks returns the number of bookmarks across all folders.
func (s *Store) TotalBookmarks() int {
	total := 0
	for _, list := range s.lists {
		total += len(list)
	}
	return total
}

// CreateFolder appends an empty folder. The name is trimmed.
// An existing name leaves the store unchanged.
func (s *Store) CreateFolder(name string) error {
	s.init()
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	if s.HasFolder(name) {
		return fmt.Errorf("%w: %q", ErrFolderExists, name)
	}
	s.names = append(s.names, name)
	s.lists[name] = []Bookmark{}
	return nil
}

// RenameFolder rekeys a folder, keeping its position and bookmarks.
// Renaming to the current name is a no-op.
func (s *Store) RenameFolder(oldName, newName string) error {
	list, ok := s.lists[oldName]
	if !ok {
		return fmt.Errorf("%w: %q", ErrFolderNotFound, oldName)
	}
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return ErrEmptyName
	}
	if newName == oldName {
		return nil
	}
	if s.HasFolder(newName) {
		return fmt.Errorf("%w: %q", ErrFolderExists, newName)
	}

	s.names[s.position(oldName)] = newName
	delete(s.lists, oldName)
	s.lists[newName] = list
	return nil
}

// DeleteFolder removes a folder together with all its bookmarks.
func (s *Store) DeleteFolder(name string) error {
	if !s.HasFolder(name) {
		return fmt.Errorf("%w: %q", ErrFolderNotFound, name)
	}
	pos := s.position(name)
	s.names = append(s.names[:pos], s.names[pos+1:]...)
	delete(s.lists, name)
	return nil
}

// AddBookmark appends a bookmark to the end of a folder.
func (s *Store) AddBookmark(folder string, b Bookmark) error {
	list, ok := s.lists[folder]
	if !ok {
		return fmt.Errorf("%w: %q", ErrFolderNotFound, folder)
	}
	if strings.TrimSpace(b.URL) == "" {
		return ErrEmptyURL
	}
	s.lists[folder] = append(list, b)
	return nil
}

// EditBookmarkTitle replaces the title of the bookmark at index.
func (s *Store) EditBookmarkTitle(folder string, index int, title string) error {
	list, err := s.listAt(folder, index)
	if err != nil {
		return err
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return ErrEmptyTitle
	}
	list[index].Title = title
	return nil
}

// DeleteBookmark removes exactly the bookmark at index and returns it.
// Bookmarks after it shift down by one.
func (s *Store) DeleteBookmark(folder string, index int) (Bookmark, error) {
	list, err := s.listAt(folder, index)
	if err != nil {
		return Bookmark{}, err
	}
	removed := list[index]
	s.lists[folder] = append(list[:index], list[index+1:]...)
	return removed, nil
}

// MoveBookmark takes the bookmark at from and inserts it so that it ends up at to.
func (s *Store) MoveBookmark(folder string, from, to int) error {
	list, err := s.listAt(folder, from)
	if err != nil {
		return err
	}
	if to < 0 || to >= len(list) {
		return fmt.Errorf("%w: %d (folder %q has %d)", ErrIndexOutOfRange, to, folder, len(list))
	}
	if from == to {
		return nil
	}

	moved := list[from]
	if from < to {
		copy(list[from:to], list[from+1:to+1])
	} else {
		copy(list[to+1:from+1], list[to:from])
	}
	list[to] = moved
	return nil
}

// Reorder rearranges a folder so that position i holds the bookmark that
// was at order[i]. order must be a permutation of the folder's indices.
func (s *Store) Reorder(folder string, order []int) error {
	list, ok := s.lists[folder]
	if !ok {
		return fmt.Errorf("%w: %q", ErrFolderNotFound, folder)
	}
	if len(order) != len(list) {
		return fmt.Errorf("%w: got %d indices for %d bookmarks", ErrInvalidOrder, len(order), len(list))
	}

	seen := make([]bool, len(list))
	reordered := make([]Bookmark, len(list))
	for i, old := range order {
		if old < 0 || old >= len(list) || seen[old] {
			return fmt.Errorf("%w: index %d", ErrInvalidOrder, old)
		}
		seen[old] = true
		reordered[i] = list[old]
	}
	s.lists[folder] = reordered
	return nil
}

// HasBookmarkURL reports whether a folder already holds a bookmark with url.
func (s *Store) HasBookmarkURL(folder, url string) bool {
	for _, b := range s.lists[folder] {
		if b.URL == url {
			return true
		}
	}
	return false
}

// Merge adds the folders and bookmarks of other into s.
// Folders are matched by name; bookmarks whose URL is already in the target
// folder are skipped. Folder names are trimmed the way CreateFolder trims
// them; bookmarks of a folder without a name are skipped.
// Returns counts of added and skipped bookmarks.
func (s *Store) Merge(other *Store) (added, skipped int) {
	s.init()
	for _, src := range other.names {
		name := strings.TrimSpace(src)
		if name == "" {
			skipped += len(other.lists[src])
			continue
		}
		if !s.HasFolder(name) {
			s.names = append(s.names, name)
			s.lists[name] = []Bookmark{}
		}
		for _, b := range other.lists[src] {
			if strings.TrimSpace(b.URL) == "" || s.HasBookmarkURL(name, b.URL) {
				skipped++
				continue
			}
			s.lists[name] = append(s.lists[name], b)
			added++
		}
	}
	return added, skipped
}

// Clone returns a deep copy of the store.
func (s *Store) Clone() *Store {
	clone := &Store{
		names: make([]string, len(s.names)),
		lists: make(map[string][]Bookmark, len(s.lists)),
	}
	copy(clone.names, s.names)
	for name, list := range s.lists {
		clone.lists[name] = cloneList(list)
	}
	return clone
}

// listAt returns the folder's backing list after checking index is in range.
func (s *Store) listAt(folder string, index int) ([]Bookmark, error) {
	list, ok := s.lists[folder]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrFolderNotFound, folder)
	}
	if index < 0 || index >= len(list) {
		return nil, fmt.Errorf("%w: %d (folder %q has %d)", ErrIndexOutOfRange, index, folder, len(list))
	}
	return list, nil
}

func (s *Store) position(name string) int {
	for i, n := range s.names {
		if n == name {
			return i
		}
	}
	return -1
}

func cloneList(list []Bookmark) []Bookmark {
	out := make([]Bookmark, len(list))
	copy(out, list)
	return out
}

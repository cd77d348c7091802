package search

import (
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/nikbrunner/shelf/internal/model"
)

// Match is a bookmark that passed a folder filter, together with its
// position in the unfiltered folder list.
type Match struct {
	Index    int
	Bookmark model.Bookmark
}

// FilterFolder returns the bookmarks whose title or URL contains query,
// ignoring case. The query is used as typed; only an empty query
// matches every bookmark.
// Matches keep folder order and carry their original index.
func FilterFolder(bookmarks []model.Bookmark, query string) []Match {
	needle := strings.ToLower(query)

	matches := make([]Match, 0, len(bookmarks))
	for i, b := range bookmarks {
		if needle == "" || contains(b.Title, needle) || contains(b.URL, needle) {
			matches = append(matches, Match{Index: i, Bookmark: b})
		}
	}
	return matches
}

func contains(s, lowerNeedle string) bool {
	return strings.Contains(strings.ToLower(s), lowerNeedle)
}

// Result represents a fuzzy search match across folders.
type Result struct {
	Folder         string
	Index          int
	Bookmark       model.Bookmark
	MatchedIndexes []int
	Score          int
}

// entry locates one bookmark in the store.
type entry struct {
	folder   string
	index    int
	bookmark model.Bookmark
}

// entries implements fuzzy.Source over display titles.
type entries []entry

func (e entries) String(i int) string {
	return e[i].bookmark.DisplayTitle()
}

func (e entries) Len() int {
	return len(e)
}

// FuzzySearch searches all bookmarks by display title using fuzzy matching.
// Returns results sorted by match score (best first).
func FuzzySearch(store *model.Store, query string) []Result {
	if query == "" {
		return nil
	}

	var all entries
	for _, folder := range store.Folders() {
		for i, b := range folder.Bookmarks {
			all = append(all, entry{folder: folder.Name, index: i, bookmark: b})
		}
	}

	matches := fuzzy.FindFrom(query, all)

	results := make([]Result, len(matches))
	for i, m := range matches {
		e := all[m.Index]
		results[i] = Result{
			Folder:         e.folder,
			Index:          e.index,
			Bookmark:       e.bookmark,
			MatchedIndexes: m.MatchedIndexes,
			Score:          m.Score,
		}
	}
	return results
}

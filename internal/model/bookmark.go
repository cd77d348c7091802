package model

import "strings"

// Bookmark is a saved page reference. It has no identifier of its own:
// a bookmark is addressed by its position within its folder.
type Bookmark struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// NewBookmarkParams holds parameters for creating a new Bookmark.
type NewBookmarkParams struct {
	Title string
	URL   string
}

// NewBookmark creates a Bookmark with surrounding whitespace removed.
func NewBookmark(params NewBookmarkParams) Bookmark {
	return Bookmark{
		Title: strings.TrimSpace(params.Title),
		URL:   strings.TrimSpace(params.URL),
	}
}

// DisplayTitle returns the title, or the URL when the title is empty.
func (b Bookmark) DisplayTitle() string {
	if b.Title == "" {
		return b.URL
	}
	return b.Title
}

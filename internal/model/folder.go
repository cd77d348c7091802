package model

// Folder is a named, ordered collection of bookmarks.
// Folders returned by Store are copies; mutate through Store methods.
type Folder struct {
	Name      string
	Bookmarks []Bookmark
}

// Count returns the number of bookmarks in the folder.
func (f Folder) Count() int {
	return len(f.Bookmarks)
}

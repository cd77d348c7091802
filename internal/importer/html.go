package importer

import (
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/nikbrunner/shelf/internal/model"
)

// ParseHTMLBookmarks parses Netscape bookmark HTML into a store.
// Nested folders are flattened into "Parent/Child" names; bookmarks outside
// any folder go to rootFolder. Folders without bookmarks are kept.
func ParseHTMLBookmarks(r io.Reader, rootFolder string) (*model.Store, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	store := model.NewStore()

	// Track current folder path for hierarchy
	var folderStack []string
	var pendingFolder string // folder waiting to be pushed on next DL

	folderName := func() string {
		if len(folderStack) == 0 {
			return rootFolder
		}
		return strings.Join(folderStack, "/")
	}

	var parse func(*html.Node)
	parse = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch strings.ToLower(n.Data) {
			case "h3":
				// Folder definition - get name from text content
				if name := getTextContent(n); name != "" {
					pendingFolder = name
					path := strings.Join(append(append([]string{}, folderStack...), name), "/")
					if !store.HasFolder(path) {
						_ = store.CreateFolder(path)
					}
				}
				return // Don't recurse into H3

			case "a":
				href := strings.TrimSpace(getAttr(n, "href"))
				if href == "" {
					// Skip bookmarks without URL
					return
				}

				title := getTextContent(n)
				if title == "" {
					title = href // fallback to URL as title
				}

				folder := folderName()
				if !store.HasFolder(folder) {
					_ = store.CreateFolder(folder)
				}
				_ = store.AddBookmark(folder, model.NewBookmark(model.NewBookmarkParams{
					Title: title,
					URL:   href,
				}))
				return // Don't recurse into A

			case "dl":
				// Definition list - marks folder contents
				pushedFolder := false
				if pendingFolder != "" {
					folderStack = append(folderStack, pendingFolder)
					pendingFolder = ""
					pushedFolder = true
				}

				for c := n.FirstChild; c != nil; c = c.NextSibling {
					parse(c)
				}

				if pushedFolder {
					folderStack = folderStack[:len(folderStack)-1]
				}
				return // Don't recurse further, we handled children
			}
		}

		// Recurse into children
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			parse(c)
		}
	}

	parse(doc)
	return store, nil
}

// getTextContent returns the text content of a node.
func getTextContent(n *html.Node) string {
	var text strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			text.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.TrimSpace(text.String())
}

// getAttr returns the value of an attribute, case-insensitive.
func getAttr(n *html.Node, key string) string {
	key = strings.ToLower(key)
	for _, attr := range n.Attr {
		if strings.ToLower(attr.Key) == key {
			return attr.Val
		}
	}
	return ""
}

package exporter

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nikbrunner/shelf/internal/model"
)

// Export formats.
const (
	FormatHTML = "html"
	FormatJSON = "json"
)

// DefaultExportPath returns the default export file path.
// Format: ~/Downloads/shelf-export-YYYY-MM-DD.<format>
func DefaultExportPath(format string) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	filename := fmt.Sprintf("shelf-export-%s.%s", time.Now().Format("2006-01-02"), format)
	return filepath.Join(home, "Downloads", filename), nil
}

// ExportHTML exports the store to Netscape bookmark HTML format.
// Each folder becomes one H3 section, in folder order.
func ExportHTML(store *model.Store) string {
	var b strings.Builder

	// Header
	b.WriteString("<!DOCTYPE NETSCAPE-Bookmark-file-1>\n")
	b.WriteString("<META HTTP-EQUIV=\"Content-Type\" CONTENT=\"text/html; charset=UTF-8\">\n")
	b.WriteString("<TITLE>Bookmarks</TITLE>\n")
	b.WriteString("<H1>Bookmarks</H1>\n")
	b.WriteString("<DL><p>\n")

	for _, folder := range store.Folders() {
		writeFolder(&b, folder, 1)
	}

	// Footer
	b.WriteString("</DL><p>\n")

	return b.String()
}

func writeFolder(b *strings.Builder, folder model.Folder, indent int) {
	prefix := strings.Repeat("    ", indent)

	fmt.Fprintf(b, "%s<DT><H3>%s</H3>\n", prefix, html.EscapeString(folder.Name))
	fmt.Fprintf(b, "%s<DL><p>\n", prefix)
	for _, bookmark := range folder.Bookmarks {
		fmt.Fprintf(b,
			"%s    <DT><A HREF=\"%s\">%s</A>\n",
			prefix,
			html.EscapeString(bookmark.URL),
			html.EscapeString(bookmark.DisplayTitle()),
		)
	}
	fmt.Fprintf(b, "%s</DL><p>\n", prefix)
}

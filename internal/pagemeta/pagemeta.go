// Package pagemeta fetches metadata of web pages for new bookmarks.
package pagemeta

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/net/html"
)

// ErrNoTitle is returned when a page has no usable <title>.
var ErrNoTitle = errors.New("page has no title")

// maxBody bounds how much of a page is read while looking for its title.
const maxBody = 1 << 20

// Fetcher reads page titles over HTTP.
type Fetcher struct {
	client *http.Client
}

// NewFetcher creates a Fetcher whose requests time out after timeout.
func NewFetcher(timeout time.Duration) *Fetcher {
	return &Fetcher{client: &http.Client{Timeout: timeout}}
}

// NewFetcherWithClient creates a Fetcher using client.
func NewFetcherWithClient(client *http.Client) *Fetcher {
	return &Fetcher{client: client}
}

// Title returns the trimmed text of the page's first <title> element.
func (f *Fetcher) Title(ctx context.Context, rawURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "text/html")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("fetch %s: %s", rawURL, resp.Status)
	}

	return ParseTitle(io.LimitReader(resp.Body, maxBody))
}

// ParseTitle extracts the first <title> of an HTML document.
// Whitespace runs inside the title collapse to single spaces.
func ParseTitle(r io.Reader) (string, error) {
	z := html.NewTokenizer(r)
	inTitle := false
	var title strings.Builder

	for {
		switch z.Next() {
		case html.ErrorToken:
			if errors.Is(z.Err(), io.EOF) {
				return finish(title.String())
			}
			return "", z.Err()
		case html.StartTagToken:
			name, _ := z.TagName()
			switch string(name) {
			case "title":
				inTitle = true
			case "body":
				// The head is over once the body starts
				return finish(title.String())
			}
		case html.TextToken:
			if inTitle {
				title.Write(z.Text())
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			if inTitle && string(name) == "title" {
				return finish(title.String())
			}
		}
	}
}

func finish(s string) (string, error) {
	title := strings.Join(strings.Fields(s), " ")
	if title == "" {
		return "", ErrNoTitle
	}
	return title, nil
}

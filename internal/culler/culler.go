package culler

import (
	"context"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/nikbrunner/shelf/internal/model"
)

// Status represents the health status of a URL.
type Status int

const (
	Healthy     Status = iota // 2xx or 3xx response
	Dead                      // 404 or 410 Gone
	Unreachable               // timeout, DNS failure, connection refused, etc.
)

func (s Status) String() string {
	switch s {
	case Healthy:
		return "ok"
	case Dead:
		return "dead"
	default:
		return "unreachable"
	}
}

// Target locates one bookmark to check.
type Target struct {
	Folder   string
	Index    int
	Bookmark model.Bookmark
}

// Targets lists every bookmark of the store, or of one folder when folder
// is not empty.
func Targets(store *model.Store, folder string) []Target {
	var targets []Target
	for _, f := range store.Folders() {
		if folder != "" && f.Name != folder {
			continue
		}
		for i, b := range f.Bookmarks {
			targets = append(targets, Target{Folder: f.Name, Index: i, Bookmark: b})
		}
	}
	return targets
}

// Result holds the check result for a single bookmark.
type Result struct {
	Target
	Status     Status
	StatusCode int    // HTTP status code (0 if connection failed)
	Error      string // Error message for unreachable URLs
}

// ProgressFunc is called after each URL is checked.
// completed is the number of URLs checked so far, total is the total count.
type ProgressFunc func(completed, total int)

// Options configures a check run.
type Options struct {
	Concurrency int
	Timeout     time.Duration
	// ExcludeDomains lists domains where 404s are treated as "possibly
	// private" instead of dead.
	ExcludeDomains []string
	OnProgress     ProgressFunc
	Client         *http.Client // nil builds one from Timeout
}

// CheckURLs checks all target URLs concurrently and returns results in
// target order. Targets not reached before ctx is done are Unreachable.
func CheckURLs(ctx context.Context, targets []Target, opts Options) []Result {
	if len(targets) == 0 {
		return nil
	}

	// Suppress noisy HTTP client logging (protocol errors, unsolicited responses, etc.)
	originalOutput := log.Writer()
	log.SetOutput(io.Discard)
	defer log.SetOutput(originalOutput)

	// Build exclude map for fast lookup
	excludeMap := make(map[string]bool)
	for _, domain := range opts.ExcludeDomains {
		excludeMap[strings.ToLower(domain)] = true
	}

	concurrency := opts.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}

	client := opts.Client
	if client == nil {
		client = &http.Client{
			Timeout: opts.Timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Follow redirects but limit to 10
				if len(via) >= 10 {
					return http.ErrUseLastResponse
				}
				return nil
			},
		}
	}

	results := make([]Result, len(targets))
	jobs := make(chan int, len(targets))
	var wg sync.WaitGroup

	// Progress tracking
	var progressMu sync.Mutex
	completed := 0

	// Start workers
	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				results[idx] = checkURL(ctx, client, targets[idx], excludeMap)

				if opts.OnProgress != nil {
					progressMu.Lock()
					completed++
					opts.OnProgress(completed, len(targets))
					progressMu.Unlock()
				}
			}
		}()
	}

	// Send jobs
	for i := range targets {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// checkURL checks a single URL and returns the result.
func checkURL(ctx context.Context, client *http.Client, target Target, excludeMap map[string]bool) Result {
	result := Result{Target: target}

	if err := ctx.Err(); err != nil {
		result.Status = Unreachable
		result.Error = "Cancelled"
		return result
	}

	// Try HEAD first (faster, less bandwidth)
	resp, err := do(ctx, client, http.MethodHead, target.Bookmark.URL)
	if err != nil {
		// HEAD failed, try GET as fallback (some servers don't support HEAD)
		resp, err = do(ctx, client, http.MethodGet, target.Bookmark.URL)
		if err != nil {
			result.Status = Unreachable
			result.Error = normalizeError(err.Error())
			return result
		}
	}
	defer resp.Body.Close()

	result.StatusCode = resp.StatusCode

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 400:
		result.Status = Healthy
	case resp.StatusCode == 404 || resp.StatusCode == 410:
		// Check if this domain is excluded (e.g., private repos)
		if isExcludedDomain(target.Bookmark.URL, excludeMap) {
			result.Status = Unreachable
			result.Error = "Possibly private (auth required)"
		} else {
			result.Status = Dead
		}
	default:
		// Other errors (500, 403, etc.) - treat as unreachable
		result.Status = Unreachable
		result.Error = http.StatusText(resp.StatusCode)
	}

	return result
}

func do(ctx context.Context, client *http.Client, method, rawURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, rawURL, nil)
	if err != nil {
		return nil, err
	}
	return client.Do(req)
}

// isExcludedDomain checks if the URL's domain is in the exclude list.
func isExcludedDomain(rawURL string, excludeMap map[string]bool) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	host := strings.ToLower(parsed.Hostname())
	// Check exact match and parent domain (e.g., "api.github.com" matches "github.com")
	if excludeMap[host] {
		return true
	}
	for domain := range excludeMap {
		if strings.HasSuffix(host, "."+domain) {
			return true
		}
	}
	return false
}

// normalizeError simplifies verbose error messages into readable categories.
func normalizeError(errStr string) string {
	lower := strings.ToLower(errStr)

	switch {
	case strings.Contains(lower, "no such host"):
		return "DNS failure"
	case strings.Contains(lower, "context deadline exceeded"),
		strings.Contains(lower, "timeout"):
		return "Timeout"
	case strings.Contains(lower, "context canceled"):
		return "Cancelled"
	case strings.Contains(lower, "connection refused"):
		return "Connection refused"
	case strings.Contains(lower, "certificate"):
		return "TLS/certificate error"
	case strings.Contains(lower, "network is unreachable"):
		return "Network unreachable"
	case strings.Contains(lower, "tls:"):
		return "TLS error"
	default:
		return errStr
	}
}

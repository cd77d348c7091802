// Package browser hands URLs to the desktop: the default browser and the clipboard.
package browser

import (
	"fmt"
	"net/url"
	"os/exec"
	"runtime"

	"github.com/atotto/clipboard"
)

// Open opens a URL in the default browser without waiting for it.
func Open(rawURL string) error {
	if err := check(rawURL); err != nil {
		return err
	}
	cmd := command(runtime.GOOS, rawURL)
	if cmd == nil {
		return fmt.Errorf("opening URLs is not supported on %s", runtime.GOOS)
	}
	return cmd.Start()
}

// CopyURL writes a URL to the system clipboard.
func CopyURL(rawURL string) error {
	if err := check(rawURL); err != nil {
		return err
	}
	return clipboard.WriteAll(rawURL)
}

func command(goos, rawURL string) *exec.Cmd {
	switch goos {
	case "darwin":
		return exec.Command("open", rawURL)
	case "linux", "freebsd", "openbsd":
		return exec.Command("xdg-open", rawURL)
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", rawURL)
	}
	return nil
}

// check rejects values that would be read as command-line options.
func check(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid URL %q: %w", rawURL, err)
	}
	if u.Scheme == "" {
		return fmt.Errorf("invalid URL %q: missing scheme", rawURL)
	}
	return nil
}

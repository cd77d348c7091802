package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/nikbrunner/shelf/internal/culler"
)

func newCheckCommand() *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "Report dead and unreachable links",
		ArgsUsage: "[folder]",
		Action:    withSession(runCheck),
	}
}

func runCheck(ctx context.Context, cmd *cli.Command, s *session) error {
	folder := cmd.Args().First()
	store := s.service.Store()
	if folder != "" && !store.HasFolder(folder) {
		return fmt.Errorf("check: folder %q not found", folder)
	}

	targets := culler.Targets(store, folder)
	if len(targets) == 0 {
		fmt.Println("No bookmarks to check.")
		return nil
	}

	results := culler.CheckURLs(ctx, targets, culler.Options{
		Concurrency:    s.cfg.CheckConcurrency,
		Timeout:        s.cfg.FetchTimeout(),
		ExcludeDomains: s.cfg.CheckExcludeDomains,
		OnProgress: func(completed, total int) {
			fmt.Fprintf(os.Stderr, "\rChecked %d/%d", completed, total)
		},
	})
	fmt.Fprintln(os.Stderr)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "STATUS\tFOLDER\tN\tTITLE\tDETAIL")
	bad := 0
	for _, r := range results {
		if r.Status == culler.Healthy {
			continue
		}
		bad++
		detail := r.Error
		if r.StatusCode != 0 {
			detail = fmt.Sprintf("HTTP %d", r.StatusCode)
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n",
			r.Status, r.Folder, r.Index+1, r.Bookmark.DisplayTitle(), detail)
	}
	if bad == 0 {
		fmt.Printf("All %d links OK\n", len(results))
		return nil
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Printf("%d of %d links need attention\n", bad, len(results))
	return nil
}

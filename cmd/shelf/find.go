package main

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v3"

	"github.com/nikbrunner/shelf/internal/browser"
	"github.com/nikbrunner/shelf/internal/picker"
	"github.com/nikbrunner/shelf/internal/search"
)

func newFindCommand() *cli.Command {
	return &cli.Command{
		Name:      "find",
		Usage:     "Fuzzy search all folders, pick a result and open it",
		ArgsUsage: "<query>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "print",
				Usage: "Print the URL instead of opening it",
			},
		},
		Action: withSession(runFind),
	}
}

// runFind performs a fuzzy search and opens the selected bookmark.
func runFind(ctx context.Context, cmd *cli.Command, s *session) error {
	query := strings.Join(cmd.Args().Slice(), " ")
	if strings.TrimSpace(query) == "" {
		return fmt.Errorf("usage: shelf find <query>")
	}

	results := search.FuzzySearch(s.service.Store(), query)
	if len(results) == 0 {
		fmt.Printf("No bookmarks found for '%s'\n", query)
		return nil
	}

	var selected search.Result
	if len(results) == 1 {
		// Single result - select it directly
		selected = results[0]
	} else {
		p := picker.New(results, query)
		finalModel, err := tea.NewProgram(p, tea.WithContext(ctx)).Run()
		if err != nil {
			return fmt.Errorf("run picker: %w", err)
		}

		finalPicker := finalModel.(picker.Picker)
		var ok bool
		selected, ok = finalPicker.Selected()
		if !ok {
			return nil
		}
	}

	if cmd.Bool("print") {
		fmt.Println(selected.Bookmark.URL)
		return nil
	}

	fmt.Printf("Opening: %s\n", selected.Bookmark.DisplayTitle())
	return browser.Open(selected.Bookmark.URL)
}

package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/nikbrunner/shelf/internal/pagemeta"
	"github.com/nikbrunner/shelf/internal/shelf"
)

func newAddCommand() *cli.Command {
	return &cli.Command{
		Name:      "add",
		Usage:     "Add a bookmark to the end of a folder",
		ArgsUsage: "<folder> <url>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "title",
				Aliases: []string{"t"},
				Usage:   "Bookmark title (fetched from the page when empty)",
			},
		},
		Action: withSession(runAdd),
	}
}

func newListCommand() *cli.Command {
	return &cli.Command{
		Name:      "list",
		Aliases:   []string{"ls"},
		Usage:     "List the bookmarks of a folder",
		ArgsUsage: "<folder>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "query",
				Aliases: []string{"q"},
				Usage:   "Only show bookmarks whose title or URL contains the query",
			},
		},
		Action: withSession(runList),
	}
}

func newEditCommand() *cli.Command {
	return &cli.Command{
		Name:      "edit",
		Usage:     "Change the title of a bookmark",
		ArgsUsage: "<folder> <n> <title>",
		Action:    withSession(runEdit),
	}
}

func newRemoveCommand() *cli.Command {
	return &cli.Command{
		Name:      "rm",
		Usage:     "Delete a bookmark",
		ArgsUsage: "<folder> <n>",
		Action:    withSession(runRemove),
	}
}

func newMoveCommand() *cli.Command {
	return &cli.Command{
		Name:      "move",
		Aliases:   []string{"mv"},
		Usage:     "Move a bookmark within its folder",
		ArgsUsage: "<folder> <from> <to>",
		Action:    withSession(runMove),
	}
}

func runAdd(ctx context.Context, cmd *cli.Command, s *session) error {
	if err := requireArgs(cmd, 2); err != nil {
		return err
	}
	folder, url := cmd.Args().Get(0), cmd.Args().Get(1)

	title := cmd.String("title")
	if title == "" && s.cfg.FetchTitles {
		fetchCtx, cancel := context.WithTimeout(ctx, s.cfg.FetchTimeout())
		fetched, err := pagemeta.NewFetcher(s.cfg.FetchTimeout()).Title(fetchCtx, url)
		cancel()
		if err != nil {
			s.logger.Warn("title fetch failed, using URL", "url", url, "error", err)
		}
		title = fetched
	}

	b, err := s.service.AddBookmark(folder, shelf.Page{Title: title, URL: url})
	if err != nil {
		return fmt.Errorf("add bookmark: %w", err)
	}
	fmt.Printf("%q added to %s\n", b.Title, folder)
	return nil
}

func runList(_ context.Context, cmd *cli.Command, s *session) error {
	if err := requireArgs(cmd, 1); err != nil {
		return err
	}
	folder := cmd.Args().First()

	matches, err := s.service.Search(folder, cmd.String("query"))
	if err != nil {
		return fmt.Errorf("list: %w", err)
	}
	if len(matches) == 0 {
		if cmd.String("query") != "" {
			fmt.Println("No bookmarks match.")
		} else {
			fmt.Println("No bookmarks in this folder.")
		}
		return nil
	}

	for _, m := range matches {
		fmt.Printf("%3d. %s\n     %s\n", m.Index+1, m.Bookmark.DisplayTitle(), m.Bookmark.URL)
	}
	return nil
}

func runEdit(_ context.Context, cmd *cli.Command, s *session) error {
	if err := requireArgs(cmd, 3); err != nil {
		return err
	}
	folder := cmd.Args().Get(0)
	index, err := argIndex(cmd, 1)
	if err != nil {
		return err
	}

	if err := s.service.EditTitle(folder, index, cmd.Args().Get(2)); err != nil {
		return fmt.Errorf("edit bookmark: %w", err)
	}
	fmt.Println("Bookmark updated")
	return nil
}

func runRemove(_ context.Context, cmd *cli.Command, s *session) error {
	if err := requireArgs(cmd, 2); err != nil {
		return err
	}
	folder := cmd.Args().Get(0)
	index, err := argIndex(cmd, 1)
	if err != nil {
		return err
	}

	b, err := s.service.DeleteBookmark(folder, index)
	if err != nil {
		return fmt.Errorf("delete bookmark: %w", err)
	}
	fmt.Printf("%q deleted\n", b.DisplayTitle())
	return nil
}

func runMove(_ context.Context, cmd *cli.Command, s *session) error {
	if err := requireArgs(cmd, 3); err != nil {
		return err
	}
	folder := cmd.Args().Get(0)
	from, err := argIndex(cmd, 1)
	if err != nil {
		return err
	}
	to, err := argIndex(cmd, 2)
	if err != nil {
		return err
	}

	if err := s.service.MoveBookmark(folder, from, to); err != nil {
		return fmt.Errorf("move bookmark: %w", err)
	}
	fmt.Printf("Moved %d to %d\n", from+1, to+1)
	return nil
}

package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v3"

	"github.com/nikbrunner/shelf/internal/browser"
	"github.com/nikbrunner/shelf/internal/pagemeta"
	"github.com/nikbrunner/shelf/internal/tui"
)

// runTUI runs the full interactive TUI.
func runTUI(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() > 0 {
		return fmt.Errorf("unknown command %q", cmd.Args().First())
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, closeLog, err := tuiLogger(cmd, cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	s, err := openSession(cfg, logger)
	if err != nil {
		return err
	}
	defer s.Close()

	fetcher := pagemeta.NewFetcher(cfg.FetchTimeout())
	app := tui.NewApp(tui.AppParams{
		Service:    s.service,
		Config:     cfg,
		FetchTitle: fetcher.Title,
		OpenURL:    browser.Open,
		CopyURL:    browser.CopyURL,
		Logger:     logger,
	})

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run app: %w", err)
	}
	return nil
}

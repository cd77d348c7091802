package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/urfave/cli/v3"

	"github.com/nikbrunner/shelf/internal/shelf"
	"github.com/nikbrunner/shelf/internal/storage"
)

// newRootCommand returns the top-level CLI command.
func newRootCommand() *cli.Command {
	configPath, err := storage.DefaultConfigFilePath()
	if err != nil {
		configPath = "config.json"
	}

	return &cli.Command{
		Name:  "shelf",
		Usage: "Folder-organized bookmarks in a synced key-value store",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to config file",
				Value:   configPath,
				Sources: cli.EnvVars("SHELF_CONFIG"),
			},
			&cli.StringFlag{
				Name:  "backend",
				Usage: "Storage backend (bolt, sqlite, json, memory)",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug logging",
			},
		},
		Action: runTUI,
		Commands: []*cli.Command{
			newFoldersCommand(),
			newFolderCommand(),
			newAddCommand(),
			newListCommand(),
			newEditCommand(),
			newRemoveCommand(),
			newMoveCommand(),
			newFindCommand(),
			newImportCommand(),
			newExportCommand(),
			newCheckCommand(),
		},
	}
}

// loadConfig reads the config named by --config and applies --backend.
func loadConfig(cmd *cli.Command) (*storage.Config, error) {
	cfg, err := storage.LoadConfig(cmd.String("config"))
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if backend := cmd.String("backend"); backend != "" {
		cfg.Backend = backend
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// cliLogger logs to stderr, warnings only unless --debug is set.
func cliLogger(cmd *cli.Command) *slog.Logger {
	level := slog.LevelWarn
	if cmd.Bool("debug") {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// tuiLogger logs to shelf.log in the data dir when --debug is set.
// The returned close func must be called when done.
func tuiLogger(cmd *cli.Command, cfg *storage.Config) (*slog.Logger, func() error, error) {
	if !cmd.Bool("debug") {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() error { return nil }, nil
	}

	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(filepath.Join(cfg.DataDir, "shelf.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, f.Close, nil
}

// session is an open service with the config it was opened from.
type session struct {
	cfg     *storage.Config
	service *shelf.Service
	storage *storage.SyncStorage
	logger  *slog.Logger
}

// openSession opens storage and loads the store.
func openSession(cfg *storage.Config, logger *slog.Logger) (*session, error) {
	st, err := storage.Open(*cfg)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}

	svc, err := shelf.NewService(shelf.ServiceParams{Storage: st, Logger: logger})
	if err != nil {
		st.Close()
		return nil, err
	}

	logger.Debug("storage opened", "backend", cfg.Backend, "dataDir", cfg.DataDir)
	return &session{cfg: cfg, service: svc, storage: st, logger: logger}, nil
}

func (s *session) Close() error {
	return s.storage.Close()
}

// withSession wraps a CLI action that needs the service.
func withSession(fn func(ctx context.Context, cmd *cli.Command, s *session) error) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		s, err := openSession(cfg, cliLogger(cmd))
		if err != nil {
			return err
		}
		defer s.Close()
		return fn(ctx, cmd, s)
	}
}

// argIndex parses the 1-based bookmark number at position i.
func argIndex(cmd *cli.Command, i int) (int, error) {
	raw := cmd.Args().Get(i)
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid bookmark number %q", raw)
	}
	return n - 1, nil
}

// requireArgs fails with usage when fewer than n arguments are given.
func requireArgs(cmd *cli.Command, n int) error {
	if cmd.NArg() < n {
		return fmt.Errorf("usage: shelf %s %s", cmd.Name, cmd.ArgsUsage)
	}
	return nil
}

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/nikbrunner/shelf/internal/exporter"
	"github.com/nikbrunner/shelf/internal/importer"
	"github.com/nikbrunner/shelf/internal/model"
)

func newImportCommand() *cli.Command {
	return &cli.Command{
		Name:      "import",
		Usage:     "Merge bookmarks from a Netscape HTML file or a JSON sync dump",
		ArgsUsage: "<file>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "folder",
				Usage: "Folder for HTML bookmarks outside any folder (default from config)",
			},
		},
		Action: withSession(runImport),
	}
}

func newExportCommand() *cli.Command {
	return &cli.Command{
		Name:      "export",
		Usage:     "Export all folders to a file",
		ArgsUsage: "[path]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Export format (html or json)",
				Value:   exporter.FormatHTML,
			},
		},
		Action: withSession(runExport),
	}
}

// runImport handles the import subcommand.
func runImport(_ context.Context, cmd *cli.Command, s *session) error {
	if err := requireArgs(cmd, 1); err != nil {
		return err
	}
	path := cmd.Args().First()

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open import file: %w", err)
	}
	defer file.Close()

	rootFolder := cmd.String("folder")
	if rootFolder == "" {
		rootFolder = s.cfg.ImportFolder
	}

	imported, err := parseImport(file, filepath.Ext(path), rootFolder)
	if err != nil {
		return err
	}

	added, skipped, err := s.service.Import(imported)
	if err != nil {
		return fmt.Errorf("import: %w", err)
	}

	fmt.Printf("Imported %d bookmarks, %d folders", added, imported.Len())
	if skipped > 0 {
		fmt.Printf(" (%d duplicates skipped)", skipped)
	}
	fmt.Println()
	return nil
}

// parseImport picks the parser by file extension.
func parseImport(r io.Reader, ext, rootFolder string) (*model.Store, error) {
	switch strings.ToLower(ext) {
	case ".json":
		store, err := importer.ParseSyncJSON(r)
		if err != nil {
			return nil, fmt.Errorf("parse JSON: %w", err)
		}
		return store, nil
	case ".html", ".htm":
		store, err := importer.ParseHTMLBookmarks(r, rootFolder)
		if err != nil {
			return nil, fmt.Errorf("parse HTML: %w", err)
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unsupported import file type %q (want .html or .json)", ext)
	}
}

// runExport handles the export subcommand.
func runExport(_ context.Context, cmd *cli.Command, s *session) error {
	format := cmd.String("format")

	store := s.service.Store()
	var data []byte
	switch format {
	case exporter.FormatHTML:
		data = []byte(exporter.ExportHTML(store))
	case exporter.FormatJSON:
		var err error
		data, err = exporter.ExportJSON(store)
		if err != nil {
			return fmt.Errorf("export: %w", err)
		}
	default:
		return fmt.Errorf("unknown export format %q", format)
	}

	outputPath := cmd.Args().First()
	if outputPath == "" {
		var err error
		outputPath, err = exporter.DefaultExportPath(format)
		if err != nil {
			return fmt.Errorf("default export path: %w", err)
		}
	}

	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return fmt.Errorf("write export: %w", err)
	}

	fmt.Printf("Exported %d bookmarks, %d folders to %s\n",
		store.TotalBookmarks(), store.Len(), outputPath)
	return nil
}

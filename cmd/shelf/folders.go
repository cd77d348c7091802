package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/nikbrunner/shelf/internal/model"
)

func newFoldersCommand() *cli.Command {
	return &cli.Command{
		Name:   "folders",
		Usage:  "List folders with their bookmark counts",
		Action: withSession(runFolders),
	}
}

func newFolderCommand() *cli.Command {
	return &cli.Command{
		Name:  "folder",
		Usage: "Manage folders",
		Commands: []*cli.Command{
			{
				Name:      "create",
				Usage:     "Create an empty folder",
				ArgsUsage: "<name>",
				Action:    withSession(runFolderCreate),
			},
			{
				Name:      "rename",
				Usage:     "Rename a folder, keeping its position",
				ArgsUsage: "<old> <new>",
				Action:    withSession(runFolderRename),
			},
			{
				Name:      "delete",
				Usage:     "Delete a folder and all its bookmarks",
				ArgsUsage: "<name>",
				Action:    withSession(runFolderDelete),
			},
		},
	}
}

func runFolders(_ context.Context, _ *cli.Command, s *session) error {
	return writeFolders(os.Stdout, s.service.Folders())
}

// writeFolders prints one "name (count)" line per folder.
func writeFolders(w io.Writer, folders []model.Folder) error {
	if len(folders) == 0 {
		_, err := fmt.Fprintln(w, "No folders created yet.")
		return err
	}
	for _, f := range folders {
		if _, err := fmt.Fprintf(w, "%s (%d)\n", f.Name, f.Count()); err != nil {
			return err
		}
	}
	return nil
}

func runFolderCreate(_ context.Context, cmd *cli.Command, s *session) error {
	if err := requireArgs(cmd, 1); err != nil {
		return err
	}
	name := cmd.Args().First()
	if err := s.service.CreateFolder(name); err != nil {
		return fmt.Errorf("create folder: %w", err)
	}
	fmt.Printf("Folder %q created\n", name)
	return nil
}

func runFolderRename(_ context.Context, cmd *cli.Command, s *session) error {
	if err := requireArgs(cmd, 2); err != nil {
		return err
	}
	oldName, newName := cmd.Args().Get(0), cmd.Args().Get(1)
	if err := s.service.RenameFolder(oldName, newName); err != nil {
		return fmt.Errorf("rename folder: %w", err)
	}
	fmt.Printf("Folder renamed to %q\n", newName)
	return nil
}

func runFolderDelete(_ context.Context, cmd *cli.Command, s *session) error {
	if err := requireArgs(cmd, 1); err != nil {
		return err
	}
	name := cmd.Args().First()
	if err := s.service.DeleteFolder(name); err != nil {
		return fmt.Errorf("delete folder: %w", err)
	}
	fmt.Printf("Folder %q deleted\n", name)
	return nil
}

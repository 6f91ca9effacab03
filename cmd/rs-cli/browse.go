package main

import (
	"io"
	"os/user"
	"path/filepath"

	"github.com/spf13/cobra"

	"rs-cli/internal/browse"
	"rs-cli/internal/rowset"
)

// browseStart launches the browser loop; replaced in tests.
var browseStart = runBrowser

func newBrowseCmd(cfg *rootConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "browse <file>",
		Short: "Browse a result set interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			it, err := loadIterator(cfg, args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			defer func() { _ = it.Close() }()
			return browseStart(it, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
}

// runBrowser wires a readline reader and runs the browser over it.
func runBrowser(it *rowset.Iterator, out, errOut io.Writer) error {
	completer := browse.NewCompleter(columnNames(it))
	reader, err := browse.NewReadlineReader("[0/0]> ", browseHistoryFile(), out, errOut, completer)
	if err != nil {
		return err
	}
	defer func() { _ = reader.Close() }()

	return browse.New(it, reader, out, errOut).Run()
}

// columnNames returns the first row's columns, or nil for an empty
// result.
func columnNames(it *rowset.Iterator) []string {
	if it.IsEmpty() {
		return nil
	}
	row, err := it.Get(0)
	if err != nil {
		return nil
	}
	return row.Columns()
}

// browseHistoryFile returns the path to the history file in the
// user's home dir.
func browseHistoryFile() string {
	u, err := user.Current()
	if err != nil {
		return ""
	}
	return filepath.Join(u.HomeDir, ".rs-cli_history")
}

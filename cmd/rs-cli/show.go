package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"rs-cli/internal/output"
	"rs-cli/internal/rowset"
)

func newShowCmd(cfg *rootConfig) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "show [file]",
		Short: "Render a result set",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			it, err := loadIterator(cfg, fileArg(args, 0), cmd.InOrStdin())
			if err != nil {
				return err
			}
			defer func() { _ = it.Close() }()

			var iter output.RowIterator = it.Stream()
			if limit > 0 {
				iter = &limitIter{inner: iter, remaining: limit}
			}
			return writeOutput(cmd.OutOrStdout(), output.DetectFormat(os.Stdout, cfg.format), iter)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "print at most this many rows (0 = all)")
	return cmd
}

// limitIter stops the stream after a fixed number of rows.
type limitIter struct {
	inner     output.RowIterator
	remaining int
}

func (l *limitIter) Next() (rowset.Row, error) {
	if l.remaining <= 0 {
		return rowset.Row{}, io.EOF
	}
	l.remaining--
	return l.inner.Next()
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCountCmd(cfg *rootConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "count [file]",
		Short: "Print the row count",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			it, err := loadIterator(cfg, fileArg(args, 0), cmd.InOrStdin())
			if err != nil {
				return err
			}
			defer func() { _ = it.Close() }()

			_, err = fmt.Fprintln(cmd.OutOrStdout(), it.Count())
			return err
		},
	}
}

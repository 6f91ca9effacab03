package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newGetCmd(cfg *rootConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "get <index> [file]",
		Short: "Print one row by index",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("get: %q is not a row index", args[0])
			}
			it, err := loadIterator(cfg, fileArg(args, 1), cmd.InOrStdin())
			if err != nil {
				return err
			}
			defer func() { _ = it.Close() }()

			row, err := it.Get(idx)
			if err != nil {
				return err
			}
			data, err := json.MarshalIndent(row, "", "  ")
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return err
		},
	}
}

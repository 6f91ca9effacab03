package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newSliceCmd(cfg *rootConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "slice <column> [file]",
		Short: "Print one column across all rows",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			it, err := loadIterator(cfg, fileArg(args, 1), cmd.InOrStdin())
			if err != nil {
				return err
			}
			defer func() { _ = it.Close() }()

			vals, err := it.Slice(args[0])
			if err != nil {
				return err
			}
			for _, v := range vals {
				data, err := json.Marshal(v)
				if err != nil {
					return err
				}
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), string(data)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

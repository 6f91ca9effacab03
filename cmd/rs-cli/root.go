package main

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"rs-cli/internal/output"
	"rs-cli/internal/rowset"
	"rs-cli/internal/source"
)

// exit codes
const (
	exitOK   = 0
	exitLoad = 1
	exitData = 2
	exitINT  = 130
)

type rootConfig struct {
	format      string
	inputFormat string
}

func newRootCmd() *cobra.Command {
	cfg := &rootConfig{}
	cmd := &cobra.Command{
		Use:           "rs-cli",
		Short:         "Result set inspection CLI",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg.resolveEnvVars(cmd.Flags().Changed)
			return cfg.validate()
		},
	}
	cmd.SetHelpCommand(&cobra.Command{Hidden: true})
	cmd.AddCommand(newShowCmd(cfg))
	cmd.AddCommand(newGetCmd(cfg))
	cmd.AddCommand(newSliceCmd(cfg))
	cmd.AddCommand(newCountCmd(cfg))
	cmd.AddCommand(newBrowseCmd(cfg))

	f := cmd.PersistentFlags()
	f.StringVarP(&cfg.format, "format", "f", "", "output format: json, jsonl, csv, table (default: json on TTY, jsonl when piped, or RS_FORMAT env)")
	f.StringVarP(&cfg.inputFormat, "input", "i", "", "input format: json, jsonl, csv (default: by file extension)")

	return cmd
}

// exitCode maps an error to the appropriate process exit code. Data
// errors (bad index, unknown column) get their own code so scripts
// can tell them from load failures.
func exitCode(err error) int {
	if err == nil {
		return exitOK
	}
	var ie *rowset.IndexError
	var fe *rowset.FieldError
	if errors.As(err, &ie) || errors.As(err, &fe) {
		return exitData
	}
	return exitLoad
}

// resolveEnvVars applies env var values for flags not explicitly set
// via CLI.
func (c *rootConfig) resolveEnvVars(changed func(string) bool) {
	applyEnvStr(&c.format, changed("format"), "RS_FORMAT")
	applyEnvStr(&c.inputFormat, changed("input"), "RS_INPUT")
}

// applyEnvStr sets *dst to the env var value when the flag was not
// explicitly set.
func applyEnvStr(dst *string, flagChanged bool, key string) {
	if flagChanged {
		return
	}
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func (c *rootConfig) validate() error {
	if c.format != "" && !slices.Contains(output.Formats, c.format) {
		return fmt.Errorf("unknown output format %q (want json, jsonl, csv, or table)", c.format)
	}
	if c.inputFormat != "" {
		if _, err := source.ParseKind(c.inputFormat); err != nil {
			return err
		}
	}
	return nil
}

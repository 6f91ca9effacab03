package main

import (
	"fmt"
	"io"
	"os"

	"rs-cli/internal/output"
	"rs-cli/internal/rowset"
	"rs-cli/internal/source"
)

// loadIterator reads the result set at path ("" or "-" means stdin)
// and wraps it in an iterator. The caller owns the iterator and must
// Close it.
func loadIterator(cfg *rootConfig, path string, stdin io.Reader) (*rowset.Iterator, error) {
	kind := source.KindJSON
	if cfg.inputFormat != "" {
		k, err := source.ParseKind(cfg.inputFormat)
		if err != nil {
			return nil, err
		}
		kind = k
	} else if path != "" && path != "-" {
		kind = source.Detect(path)
	}

	r := stdin
	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("load: %w", err)
		}
		defer func() { _ = f.Close() }()
		r = f
	}

	buf, err := source.Load(r, kind)
	if err != nil {
		return nil, err
	}
	return rowset.New(buf), nil
}

// fileArg returns args[i] or "" when absent.
func fileArg(args []string, i int) string {
	if len(args) > i {
		return args[i]
	}
	return ""
}

func writeOutput(w io.Writer, format string, iter output.RowIterator) error {
	switch format {
	case "jsonl":
		return output.JSONL(w, iter)
	case "csv":
		return output.CSV(w, iter)
	case "table":
		return output.Table(w, iter)
	default:
		return output.JSON(w, iter)
	}
}

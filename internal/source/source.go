// Package source loads materialized result sets from JSON, JSONL,
// and CSV input into result buffers.
package source

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"rs-cli/internal/resultbuf"
)

// Kind identifies an input format.
type Kind string

const (
	KindJSON  Kind = "json"
	KindJSONL Kind = "jsonl"
	KindCSV   Kind = "csv"
)

// ParseKind validates a user-supplied format name.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindJSON, KindJSONL, KindCSV:
		return Kind(s), nil
	}
	return "", fmt.Errorf("source: unknown input format %q (want json, jsonl, or csv)", s)
}

// Detect guesses the input kind from the file extension, defaulting
// to JSON.
func Detect(path string) Kind {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jsonl", ".ndjson":
		return KindJSONL
	case ".csv":
		return KindCSV
	default:
		return KindJSON
	}
}

// Load reads one result set from r in the given format.
func Load(r io.Reader, kind Kind) (*resultbuf.Buffer, error) {
	switch kind {
	case KindJSONL:
		return loadJSONL(r)
	case KindCSV:
		return loadCSV(r)
	default:
		return loadJSON(r)
	}
}

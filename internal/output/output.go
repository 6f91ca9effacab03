// Package output renders result-set rows in json, jsonl, csv, and
// table form.
package output

import "rs-cli/internal/rowset"

// RowIterator streams rows from a result set, returning io.EOF after
// the last row. *rowset.Stream satisfies it.
type RowIterator interface {
	Next() (rowset.Row, error)
}

// Formats lists the supported output format names.
var Formats = []string{"json", "jsonl", "csv", "table"}

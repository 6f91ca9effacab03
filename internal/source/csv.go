package source

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"rs-cli/internal/resultbuf"
)

// loadCSV reads a CSV stream whose first record is the header. All
// values stay strings; no type sniffing.
func loadCSV(r io.Reader) (*resultbuf.Buffer, error) {
	cr := csv.NewReader(r)
	cr.ReuseRecord = false

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return resultbuf.New(nil, nil)
	}
	if err != nil {
		return nil, fmt.Errorf("source: csv: header: %w", err)
	}

	var rows [][]any
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("source: csv: %w", err)
		}
		row := make([]any, len(rec))
		for i, v := range rec {
			row[i] = v
		}
		rows = append(rows, row)
	}
	return resultbuf.New(header, rows)
}

package source

import (
	"encoding/json"
	"fmt"
	"io"

	"rs-cli/internal/resultbuf"
)

// record is one decoded object with its key order intact.
type record struct {
	keys []string
	vals map[string]any
}

// loadJSON decodes a top-level JSON array of objects.
func loadJSON(r io.Reader) (*resultbuf.Buffer, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("source: json: %w", err)
	}
	if tok != json.Delim('[') {
		return nil, fmt.Errorf("source: json: top-level value must be an array of objects")
	}

	var recs []record
	for dec.More() {
		rec, err := decodeObject(dec)
		if err != nil {
			return nil, fmt.Errorf("source: json: row %d: %w", len(recs), err)
		}
		recs = append(recs, rec)
	}
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("source: json: %w", err)
	}
	return buildBuffer(recs)
}

// decodeObject reads one object from dec, preserving key order.
// encoding/json maps lose order, so keys are collected via the token
// stream and values decoded one at a time.
func decodeObject(dec *json.Decoder) (record, error) {
	tok, err := dec.Token()
	if err != nil {
		return record{}, err
	}
	if tok != json.Delim('{') {
		return record{}, fmt.Errorf("expected an object, got %v", tok)
	}
	rec := record{vals: map[string]any{}}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return record{}, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return record{}, fmt.Errorf("unexpected key token %v", keyTok)
		}
		var v any
		if err := dec.Decode(&v); err != nil {
			return record{}, err
		}
		if _, dup := rec.vals[key]; !dup {
			rec.keys = append(rec.keys, key)
		}
		rec.vals[key] = v
	}
	if _, err := dec.Token(); err != nil {
		return record{}, err
	}
	return rec, nil
}

// buildBuffer assembles records into a buffer. The column set is the
// first-seen union across all records; cells a record lacks are nil.
func buildBuffer(recs []record) (*resultbuf.Buffer, error) {
	seen := map[string]bool{}
	var columns []string
	for _, rec := range recs {
		for _, k := range rec.keys {
			if !seen[k] {
				seen[k] = true
				columns = append(columns, k)
			}
		}
	}
	rows := make([][]any, 0, len(recs))
	for _, rec := range recs {
		row := make([]any, len(columns))
		for i, c := range columns {
			row[i] = rec.vals[c]
		}
		rows = append(rows, row)
	}
	return resultbuf.New(columns, rows)
}

// Package rowset provides a random-access, lazily-materializing
// iterator over the rows of one executed query result.
package rowset

import (
	"bytes"
	"encoding/json"
)

// Row is an ordered mapping from column name to an already-converted
// value. A Row is produced fresh by each fetch and is owned by the
// caller; mutating it never affects the underlying result.
type Row struct {
	cols []string
	vals []any
}

// NewRow builds a Row from parallel column and value slices. The
// slices are retained, not copied; callers hand over ownership.
func NewRow(cols []string, vals []any) Row {
	return Row{cols: cols, vals: vals}
}

// Columns returns the column names in result order.
func (r Row) Columns() []string { return r.cols }

// Len returns the number of columns.
func (r Row) Len() int { return len(r.cols) }

// Get returns the value for col and whether the column exists.
func (r Row) Get(col string) (any, bool) {
	for i, c := range r.cols {
		if c == col {
			return r.vals[i], true
		}
	}
	return nil, false
}

// Value returns the value at column position i.
func (r Row) Value(i int) any { return r.vals[i] }

// MarshalJSON encodes the row as a JSON object with keys in column
// order. encoding/json sorts map keys, so the object is built by hand.
func (r Row) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, c := range r.cols {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(c)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(r.vals[i])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

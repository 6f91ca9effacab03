// Package resultbuf provides an in-memory implementation of the
// rowset.ResultHandle contract over an already-materialized result.
package resultbuf

import (
	"fmt"

	"rs-cli/internal/rowset"
)

// Buffer holds one query result: a column list and a value matrix.
// It implements rowset.ResultHandle. The optional release hook stands
// in for freeing whatever native resource produced the result (a
// driver buffer, an open file); it runs at most once.
type Buffer struct {
	columns  []string
	colIndex map[string]int
	rows     [][]any
	released bool
	release  func()
}

// New builds a Buffer from columns and rows. Every row must be
// exactly as wide as the column list.
func New(columns []string, rows [][]any) (*Buffer, error) {
	for i, row := range rows {
		if len(row) != len(columns) {
			return nil, fmt.Errorf("resultbuf: row %d has %d values, want %d", i, len(row), len(columns))
		}
	}
	idx := make(map[string]int, len(columns))
	for i, c := range columns {
		idx[c] = i
	}
	return &Buffer{columns: columns, colIndex: idx, rows: rows}, nil
}

// OnRelease registers fn to run on the first Release call.
func (b *Buffer) OnRelease(fn func()) { b.release = fn }

// Columns returns the column names in result order.
func (b *Buffer) Columns() []string { return b.columns }

// FetchRow returns the row at index, fresh on every call so the
// caller owns it outright.
func (b *Buffer) FetchRow(index int) (rowset.Row, error) {
	if index < 0 || index >= len(b.rows) {
		return rowset.Row{}, &rowset.IndexError{Index: index, Count: len(b.rows)}
	}
	vals := append([]any(nil), b.rows[index]...)
	return rowset.NewRow(b.columns, vals), nil
}

// FetchColumn returns the named column across all rows.
func (b *Buffer) FetchColumn(field string) ([]any, error) {
	i, ok := b.colIndex[field]
	if !ok {
		return nil, &rowset.FieldError{Field: field}
	}
	vals := make([]any, 0, len(b.rows))
	for _, row := range b.rows {
		vals = append(vals, row[i])
	}
	return vals, nil
}

// CountRows returns the total row count.
func (b *Buffer) CountRows() int { return len(b.rows) }

// Release runs the release hook once. Further calls are no-ops.
func (b *Buffer) Release() {
	if b.released {
		return
	}
	b.released = true
	if b.release != nil {
		b.release()
	}
}

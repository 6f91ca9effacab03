package rowset

import (
	"encoding/json"
	"io"
	"iter"
)

// Iterator is a cursor over one executed query result. It owns its
// ResultHandle exclusively and must be released with Close (use
// defer) so the native result buffer is freed on every exit path.
//
// An Iterator is not safe for concurrent use: position and the
// memoized count are unsynchronized state owned by a single
// goroutine, matching the synchronous one-call-at-a-time model of the
// underlying handle.
type Iterator struct {
	h       ResultHandle
	pos     int
	count   int
	counted bool
	closed  bool
}

// New wraps a fully-populated ResultHandle, taking ownership of it.
// Neither the row count nor any row is fetched eagerly.
func New(h ResultHandle) *Iterator {
	return &Iterator{h: h}
}

// Close releases the underlying handle. Idempotent: only the first
// call releases; calling Close on a never-iterated or exhausted
// iterator is fine. Always returns nil.
func (it *Iterator) Close() error {
	if it.closed {
		return nil
	}
	it.closed = true
	it.h.Release()
	return nil
}

// Count returns the total number of rows. The count is queried from
// the handle at most once: the result is assumed immutable once
// fetched, and counting may be an expensive driver round trip.
func (it *Iterator) Count() int {
	if !it.counted {
		it.count = it.h.CountRows()
		it.counted = true
	}
	return it.count
}

// Has reports whether a row exists at index. Indices are 0-based;
// negative indices are never present.
func (it *Iterator) Has(index int) bool {
	return index >= 0 && index < it.Count()
}

// Get fetches the row at index. No bounds pre-check is performed
// here; an out-of-range index surfaces as *IndexError from the
// handle.
func (it *Iterator) Get(index int) (Row, error) {
	return it.h.FetchRow(index)
}

// Seek fetches the row at index. Same contract as Get; exists so the
// iterator satisfies a seekable-cursor shape.
func (it *Iterator) Seek(index int) (Row, error) {
	return it.Get(index)
}

// Rewind resets the cursor to the first row. The memoized count is
// untouched.
func (it *Iterator) Rewind() { it.pos = 0 }

// Current returns the row at the cursor position. On an empty result
// it returns io.EOF without attempting a fetch; a cursor that has run
// past the end of a non-empty result surfaces *IndexError from the
// handle.
func (it *Iterator) Current() (Row, error) {
	if it.IsEmpty() {
		return Row{}, io.EOF
	}
	return it.Get(it.pos)
}

// Key returns the cursor position, valid or not.
func (it *Iterator) Key() int { return it.pos }

// Next advances the cursor. There is no upper bound: the position may
// run past the end, after which Valid reports false until Rewind.
func (it *Iterator) Next() { it.pos++ }

// Valid reports whether the cursor points at an existing row.
func (it *Iterator) Valid() bool { return it.Has(it.pos) }

// IsFirst reports whether the cursor is on the first row. ok is false
// when the result is empty and the answer is undefined.
func (it *Iterator) IsFirst() (first, ok bool) {
	if it.IsEmpty() {
		return false, false
	}
	return it.pos == 0, true
}

// IsLast reports whether the cursor is on the last row. ok is false
// when the result is empty and the answer is undefined.
func (it *Iterator) IsLast() (last, ok bool) {
	if it.IsEmpty() {
		return false, false
	}
	return it.pos == it.Count()-1, true
}

// IsEmpty reports whether the result has no rows, computing the count
// if it is not yet memoized.
func (it *Iterator) IsEmpty() bool { return it.Count() == 0 }

// IsEven reports whether the cursor position is even. Position 0 is
// even.
func (it *Iterator) IsEven() bool { return it.pos%2 == 0 }

// IsOdd reports whether the cursor position is odd.
func (it *Iterator) IsOdd() bool { return !it.IsEven() }

// OddEven returns "even" or "odd" for the cursor position, for
// presentation use such as striped table rendering.
func (it *Iterator) OddEven() string {
	if it.IsEven() {
		return "even"
	}
	return "odd"
}

// Slice returns the named column's value for every row, in row
// order. The cursor position is neither used nor moved. Unknown
// columns surface as *FieldError; an empty result yields an empty
// slice.
func (it *Iterator) Slice(field string) ([]any, error) {
	return it.h.FetchColumn(field)
}

// Extract materializes the entire result into memory as a row slice
// in position order. The scan is independent of the cursor. Large
// results cost proportionally large memory; prefer All or Stream when
// a single pass is enough.
func (it *Iterator) Extract() ([]Row, error) {
	n := it.Count()
	rows := make([]Row, 0, n)
	for i := 0; i < n; i++ {
		row, err := it.Get(i)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// MarshalJSON encodes the result as exactly the materialized row
// array, nothing wrapped around it.
func (it *Iterator) MarshalJSON() ([]byte, error) {
	rows, err := it.Extract()
	if err != nil {
		return nil, err
	}
	return json.Marshal(rows)
}

// All returns a lazy index/row sequence over the whole result. Each
// range is a fresh pass independent of the cursor, so the sequence is
// restartable. A fetch failure ends the sequence early.
func (it *Iterator) All() iter.Seq2[int, Row] {
	return func(yield func(int, Row) bool) {
		n := it.Count()
		for i := 0; i < n; i++ {
			row, err := it.Get(i)
			if err != nil {
				return
			}
			if !yield(i, row) {
				return
			}
		}
	}
}

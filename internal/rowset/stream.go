package rowset

import "io"

// Stream is a sequential view of an Iterator: Next returns each row
// in order and io.EOF after the last one. It drives the iterator's
// cursor, so it shares position state with its parent.
type Stream struct {
	it *Iterator
}

// Stream rewinds the cursor and returns a sequential reader over the
// whole result.
func (it *Iterator) Stream() *Stream {
	it.Rewind()
	return &Stream{it: it}
}

// Next returns the row at the cursor and advances it. Returns io.EOF
// once the cursor has passed the last row.
func (s *Stream) Next() (Row, error) {
	if !s.it.Valid() {
		return Row{}, io.EOF
	}
	row, err := s.it.Get(s.it.Key())
	if err != nil {
		return Row{}, err
	}
	s.it.Next()
	return row, nil
}

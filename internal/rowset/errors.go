package rowset

import "fmt"

// IndexError is returned when a requested row index lies outside the
// handle's valid range.
type IndexError struct {
	Index int
	Count int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("rowset: row index %d out of range [0, %d)", e.Index, e.Count)
}

// FieldError is returned when a column name is unknown to the result.
type FieldError struct {
	Field string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("rowset: unknown column %q", e.Field)
}

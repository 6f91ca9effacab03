package rowset

// ResultHandle is the driver-level handle to one fetched query
// result. It owns the native result buffer; the iterator only ever
// reaches the result through this interface.
//
// A handle is exclusively owned by exactly one Iterator at a time.
// Row values are converted before they cross this boundary; the
// iterator treats them as opaque.
type ResultHandle interface {
	// FetchRow returns the row at index, fresh on every call.
	// Returns *IndexError when index is outside the valid range.
	FetchRow(index int) (Row, error)

	// FetchColumn returns the named column's value across all rows,
	// in row order. Returns *FieldError when the column is unknown.
	FetchColumn(field string) ([]any, error)

	// CountRows returns the total row count, stable for the
	// handle's lifetime.
	CountRows() int

	// Release frees the native result buffer. Idempotent; safe to
	// call before any row was fetched.
	Release()
}

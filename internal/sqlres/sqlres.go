// Package sqlres materializes database/sql query results into result
// buffers, the handle form the rowset iterator consumes. Value
// conversion happens here, on the driver side of the boundary.
package sqlres

import (
	"context"
	"database/sql"
	"fmt"

	"rs-cli/internal/resultbuf"
	"rs-cli/internal/rowset"
)

// FromRows drains an executed *sql.Rows into a Buffer. The caller
// still owns rows and must close it; FromRows only reads.
func FromRows(rows *sql.Rows) (*resultbuf.Buffer, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("sqlres: columns: %w", err)
	}
	var data [][]any
	for rows.Next() {
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("sqlres: scan row %d: %w", len(data), err)
		}
		for i, v := range vals {
			// drivers reuse []byte buffers between Next calls
			if b, ok := v.([]byte); ok {
				vals[i] = string(b)
			}
		}
		data = append(data, vals)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlres: rows: %w", err)
	}
	return resultbuf.New(cols, data)
}

// Query executes query against db and returns an iterator over the
// materialized result. The *sql.Rows is fully drained and closed
// before Query returns; the iterator owns only the buffer.
func Query(ctx context.Context, db *sql.DB, query string, args ...any) (*rowset.Iterator, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("sqlres: query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	buf, err := FromRows(rows)
	if err != nil {
		return nil, err
	}
	return rowset.New(buf), nil
}

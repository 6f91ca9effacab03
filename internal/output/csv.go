package output

import (
	"encoding/csv"
	"io"
)

// CSV formats the result as comma-separated values with a header
// record. The column set is the first-seen union across all rows;
// cells a row lacks are written empty.
func CSV(w io.Writer, iter RowIterator) error {
	rows, _, err := collectRows(iter, 0)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}
	cols := unionColumns(rows)

	cw := csv.NewWriter(w)
	if err := cw.Write(cols); err != nil {
		return err
	}
	rec := make([]string, len(cols))
	for _, row := range rows {
		for i, c := range cols {
			v, ok := row.Get(c)
			if !ok {
				rec[i] = ""
				continue
			}
			rec[i] = cellString(v)
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

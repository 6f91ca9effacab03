package output

import (
	"encoding/json"
	"errors"
	"io"

	"rs-cli/internal/rowset"
)

// cellString renders a single value for text formats: strings stay
// bare, nil is empty, everything else is compact JSON.
func cellString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.Number:
		return t.String()
	default:
		data, err := json.Marshal(t)
		if err != nil {
			return ""
		}
		return string(data)
	}
}

// collectRows drains iter up to maxRows. The second return reports
// whether the iterator had more rows past the cap; maxRows <= 0 means
// no cap.
func collectRows(iter RowIterator, maxRows int) ([]rowset.Row, bool, error) {
	var rows []rowset.Row
	for {
		row, err := iter.Next()
		if errors.Is(err, io.EOF) {
			return rows, false, nil
		}
		if err != nil {
			return nil, false, err
		}
		if maxRows > 0 && len(rows) >= maxRows {
			return rows, true, nil
		}
		rows = append(rows, row)
	}
}

// unionColumns returns the first-seen union of column names across
// rows.
func unionColumns(rows []rowset.Row) []string {
	seen := map[string]bool{}
	var cols []string
	for _, row := range rows {
		for _, c := range row.Columns() {
			if !seen[c] {
				seen[c] = true
				cols = append(cols, c)
			}
		}
	}
	return cols
}

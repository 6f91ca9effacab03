package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// JSON formats the result as a pretty-printed JSON array. The
// serialized form of a result set is always the row array, so a
// single row still renders inside brackets and an empty result prints
// as [].
func JSON(w io.Writer, iter RowIterator) error {
	first := true
	for {
		row, err := iter.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		if first {
			if _, err := fmt.Fprintln(w, "["); err != nil {
				return err
			}
		} else {
			if _, err := fmt.Fprintln(w, ","); err != nil {
				return err
			}
		}
		first = false

		data, err := json.Marshal(row)
		if err != nil {
			return err
		}
		var buf bytes.Buffer
		if err := json.Indent(&buf, data, "  ", "  "); err != nil {
			buf.Reset()
			buf.Write(data)
		}
		if _, err := fmt.Fprintf(w, "  %s", buf.String()); err != nil {
			return err
		}
	}
	if first {
		_, err := fmt.Fprintln(w, "[]")
		return err
	}
	_, err := fmt.Fprintln(w, "\n]")
	return err
}

package output

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

const (
	maxTableRows    = 10000
	defaultColWidth = 50
	minColWidth     = 8
)

// Table formats the result as an aligned ASCII table. Buffers up to
// maxTableRows rows; past that the output is truncated with a warning
// to stderr. Column width is capped from the terminal width when
// stdout is a TTY.
func Table(w io.Writer, iter RowIterator) error {
	return tableWriter(w, os.Stderr, iter, maxTableRows, colWidthCap())
}

// colWidthCap derives the per-column width cap from the terminal.
func colWidthCap() int {
	tw := terminalWidth(os.Stdout)
	if tw <= 0 {
		return defaultColWidth
	}
	limit := tw / 2
	if limit < minColWidth {
		return minColWidth
	}
	if limit > defaultColWidth {
		return defaultColWidth
	}
	return limit
}

func tableWriter(w, errOut io.Writer, iter RowIterator, maxRows, widthCap int) error {
	rows, truncated, err := collectRows(iter, maxRows)
	if err != nil {
		return err
	}
	if truncated {
		_, _ = fmt.Fprintf(errOut, "warning: result truncated at %d rows\n", maxRows)
	}
	if len(rows) == 0 {
		return nil
	}

	cols := unionColumns(rows)
	widths := make([]int, len(cols))
	for i, c := range cols {
		widths[i] = utf8.RuneCountInString(c)
	}
	cells := make([][]string, len(rows))
	for ri, row := range rows {
		cells[ri] = make([]string, len(cols))
		for ci, c := range cols {
			v, _ := row.Get(c)
			s := cellString(v)
			cells[ri][ci] = s
			if n := utf8.RuneCountInString(s); n > widths[ci] {
				widths[ci] = n
			}
		}
	}
	for i := range widths {
		if widths[i] > widthCap {
			widths[i] = widthCap
		}
	}

	if err := printHeader(w, cols, widths); err != nil {
		return err
	}
	for _, rec := range cells {
		if err := printRecord(w, rec, widths); err != nil {
			return err
		}
	}
	return nil
}

func printHeader(w io.Writer, cols []string, widths []int) error {
	parts := make([]string, len(cols))
	for i, c := range cols {
		parts[i] = padRight(c, widths[i])
	}
	if _, err := fmt.Fprintln(w, strings.Join(parts, " | ")); err != nil {
		return err
	}
	seps := make([]string, len(widths))
	for i, width := range widths {
		seps[i] = strings.Repeat("-", width)
	}
	_, err := fmt.Fprintln(w, strings.Join(seps, "-+-"))
	return err
}

func printRecord(w io.Writer, rec []string, widths []int) error {
	parts := make([]string, len(rec))
	for i, s := range rec {
		if runes := []rune(s); widths[i] > 0 && len(runes) > widths[i] {
			s = string(runes[:widths[i]-1]) + "~"
		}
		parts[i] = padRight(s, widths[i])
	}
	_, err := fmt.Fprintln(w, strings.Join(parts, " | "))
	return err
}

func padRight(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

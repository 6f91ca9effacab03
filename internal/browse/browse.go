// Package browse provides an interactive browser over one loaded
// result set.
package browse

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"rs-cli/internal/rowset"
)

// ErrInterrupt is returned by Reader.Readline when the user presses
// Ctrl+C.
var ErrInterrupt = errors.New("interrupt")

// Reader abstracts line input for testability.
type Reader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
	AddHistory(line string) error
	Close() error
}

// Browser runs a command loop over a result-set iterator.
type Browser struct {
	it     *rowset.Iterator
	reader Reader
	out    io.Writer
	errOut io.Writer
}

// New creates a Browser. The iterator stays owned by the caller; the
// browser never closes it.
func New(it *rowset.Iterator, reader Reader, out, errOut io.Writer) *Browser {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}
	return &Browser{it: it, reader: reader, out: out, errOut: errOut}
}

// Run starts the browser loop. Returns nil on clean exit (EOF or an
// exit command). Ctrl+C clears the current line.
func (b *Browser) Run() error {
	b.reader.SetPrompt(b.prompt())
	for {
		line, err := b.reader.Readline()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if errors.Is(err, ErrInterrupt) {
			continue
		}
		if err != nil {
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		_ = b.reader.AddHistory(line)
		if b.dispatch(line) {
			return nil
		}
		b.reader.SetPrompt(b.prompt())
	}
}

// prompt renders the cursor position, e.g. "[1/3]> ".
func (b *Browser) prompt() string {
	return fmt.Sprintf("[%d/%d]> ", b.it.Key(), b.it.Count())
}

// dispatch runs one command line. Returns true when the browser
// should exit.
func (b *Browser) dispatch(line string) bool {
	parts := strings.Fields(line)
	switch parts[0] {
	case "exit", "quit":
		return true
	case "show", "current":
		b.showCurrent()
	case "next":
		b.it.Next()
		if !b.it.Valid() {
			_, _ = fmt.Fprintln(b.errOut, "end of result (rewind to start over)")
			return false
		}
		b.showCurrent()
	case "rewind":
		b.it.Rewind()
		b.showCurrent()
	case "seek":
		if len(parts) < 2 {
			_, _ = fmt.Fprintln(b.errOut, "usage: seek <index>")
			return false
		}
		b.seek(parts[1])
	case "pos":
		b.showPos()
	case "count":
		_, _ = fmt.Fprintln(b.out, b.it.Count())
	case "columns":
		b.showColumns()
	case "slice":
		if len(parts) < 2 {
			_, _ = fmt.Fprintln(b.errOut, "usage: slice <column>")
			return false
		}
		b.slice(parts[1])
	case "all":
		b.showAll()
	case "help":
		b.showHelp()
	default:
		_, _ = fmt.Fprintf(b.errOut, "unknown command: %s (try help)\n", parts[0])
	}
	return false
}

// showCurrent prints the row under the cursor.
func (b *Browser) showCurrent() {
	row, err := b.it.Current()
	if errors.Is(err, io.EOF) {
		_, _ = fmt.Fprintln(b.errOut, "empty result")
		return
	}
	if err != nil {
		_, _ = fmt.Fprintln(b.errOut, err)
		return
	}
	b.printRow(row)
}

// seek prints the row at the given index. Random access: the cursor
// does not move.
func (b *Browser) seek(arg string) {
	idx, err := strconv.Atoi(arg)
	if err != nil {
		_, _ = fmt.Fprintf(b.errOut, "seek: %q is not an index\n", arg)
		return
	}
	row, err := b.it.Seek(idx)
	if err != nil {
		_, _ = fmt.Fprintln(b.errOut, err)
		return
	}
	b.printRow(row)
}

func (b *Browser) showPos() {
	pos := b.it.Key()
	n := b.it.Count()
	marks := []string{b.it.OddEven()}
	if first, ok := b.it.IsFirst(); ok && first {
		marks = append(marks, "first")
	}
	if last, ok := b.it.IsLast(); ok && last {
		marks = append(marks, "last")
	}
	if !b.it.Valid() {
		marks = append(marks, "past end")
	}
	_, _ = fmt.Fprintf(b.out, "position %d of %d (%s)\n", pos, n, strings.Join(marks, ", "))
}

func (b *Browser) showColumns() {
	if b.it.IsEmpty() {
		_, _ = fmt.Fprintln(b.errOut, "empty result")
		return
	}
	row, err := b.it.Get(0)
	if err != nil {
		_, _ = fmt.Fprintln(b.errOut, err)
		return
	}
	for _, c := range row.Columns() {
		_, _ = fmt.Fprintln(b.out, c)
	}
}

func (b *Browser) slice(col string) {
	vals, err := b.it.Slice(col)
	if err != nil {
		_, _ = fmt.Fprintln(b.errOut, err)
		return
	}
	for _, v := range vals {
		data, err := json.Marshal(v)
		if err != nil {
			_, _ = fmt.Fprintln(b.errOut, err)
			return
		}
		_, _ = fmt.Fprintln(b.out, string(data))
	}
}

// showAll materializes the whole result and prints it as indented
// JSON. Position independent.
func (b *Browser) showAll() {
	rows, err := b.it.Extract()
	if err != nil {
		_, _ = fmt.Fprintln(b.errOut, err)
		return
	}
	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		_, _ = fmt.Fprintln(b.errOut, err)
		return
	}
	_, _ = fmt.Fprintln(b.out, string(data))
}

func (b *Browser) printRow(row rowset.Row) {
	data, err := json.MarshalIndent(row, "", "  ")
	if err != nil {
		_, _ = fmt.Fprintln(b.errOut, err)
		return
	}
	_, _ = fmt.Fprintln(b.out, string(data))
}

func (b *Browser) showHelp() {
	_, _ = fmt.Fprintln(b.out, "Available commands:")
	_, _ = fmt.Fprintln(b.out, "  show               print the row under the cursor")
	_, _ = fmt.Fprintln(b.out, "  next               advance the cursor and print the row")
	_, _ = fmt.Fprintln(b.out, "  rewind             move the cursor back to row 0")
	_, _ = fmt.Fprintln(b.out, "  seek <index>       print a row by index (cursor stays put)")
	_, _ = fmt.Fprintln(b.out, "  pos                show cursor position and parity")
	_, _ = fmt.Fprintln(b.out, "  count              show the row count")
	_, _ = fmt.Fprintln(b.out, "  columns            list column names")
	_, _ = fmt.Fprintln(b.out, "  slice <column>     print one column across all rows")
	_, _ = fmt.Fprintln(b.out, "  all                print every row as JSON")
	_, _ = fmt.Fprintln(b.out, "  exit, quit         leave the browser")
}

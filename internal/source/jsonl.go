package source

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"rs-cli/internal/resultbuf"
)

// loadJSONL decodes newline-delimited JSON: one object per non-blank
// line.
func loadJSONL(r io.Reader) (*resultbuf.Buffer, error) {
	var recs []record
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		dec := json.NewDecoder(strings.NewReader(line))
		dec.UseNumber()
		rec, err := decodeObject(dec)
		if err != nil {
			return nil, fmt.Errorf("source: jsonl: line %d: %w", lineNo, err)
		}
		recs = append(recs, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("source: jsonl: %w", err)
	}
	return buildBuffer(recs)
}

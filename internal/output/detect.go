package output

import (
	"os"

	"golang.org/x/term"
)

// isTerminalFn allows overriding terminal detection in tests.
var isTerminalFn = func(f *os.File) bool {
	return f != nil && term.IsTerminal(int(f.Fd()))
}

// DetectFormat returns the output format to use. If flagFormat is
// non-empty it is returned directly (explicit flag wins). Otherwise
// "json" for a TTY stdout or "jsonl" for a pipe or redirect.
func DetectFormat(stdout *os.File, flagFormat string) string {
	if flagFormat != "" {
		return flagFormat
	}
	if isTerminalFn(stdout) {
		return "json"
	}
	return "jsonl"
}

// terminalWidth returns the column width of f, or 0 when f is not a
// terminal.
func terminalWidth(f *os.File) int {
	if f == nil || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	w, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return w
}

package browse

import "strings"

// TabCompleter is implemented by types that provide readline tab
// completion.
type TabCompleter interface {
	Do(line []rune, pos int) (newLine [][]rune, length int)
}

// command verbs the browser understands, sorted
var commands = []string{
	"all", "columns", "count", "current", "exit", "help", "next",
	"pos", "quit", "rewind", "seek", "show", "slice",
}

// Completer completes browser commands and, after "slice", column
// names.
type Completer struct {
	columns []string
}

// NewCompleter creates a Completer over the given column names.
func NewCompleter(columns []string) *Completer {
	return &Completer{columns: columns}
}

// Do implements TabCompleter and readline.AutoCompleter.
// Returns completion candidates and how many chars to remove before
// the cursor.
func (c *Completer) Do(line []rune, pos int) (newLine [][]rune, length int) {
	s := string(line[:pos])

	if rest, ok := strings.CutPrefix(s, "slice "); ok {
		word := strings.TrimLeft(rest, " ")
		return filterCompletions(c.columns, word), len(word)
	}
	if !strings.ContainsRune(s, ' ') {
		return filterCompletions(commands, s), len(s)
	}
	return nil, 0
}

// filterCompletions returns suffix completions (readline appends them
// to what's already typed).
func filterCompletions(candidates []string, prefix string) [][]rune {
	var result [][]rune
	for _, cand := range candidates {
		if strings.HasPrefix(cand, prefix) {
			result = append(result, []rune(cand[len(prefix):]))
		}
	}
	return result
}

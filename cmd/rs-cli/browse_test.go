package main

import (
	"io"
	"testing"

	"rs-cli/internal/rowset"
)

func TestBrowseCmdRegistered(t *testing.T) {
	t.Parallel()
	root := newRootCmd()
	for _, sub := range root.Commands() {
		if sub.Name() == "browse" {
			if sub.Use != "browse <file>" {
				t.Errorf("browse Use: got %q", sub.Use)
			}
			return
		}
	}
	t.Error("browse subcommand not registered")
}

func TestBrowseLoadsIteratorBeforeStart(t *testing.T) {
	orig := browseStart
	defer func() { browseStart = orig }()

	var gotCount int
	browseStart = func(it *rowset.Iterator, out, errOut io.Writer) error {
		gotCount = it.Count()
		return nil
	}

	path := writeTempFile(t, "d.json", `[{"id":1},{"id":2}]`)
	if _, _, err := runCLI(t, "browse", path); err != nil {
		t.Fatalf("browse: %v", err)
	}
	if gotCount != 2 {
		t.Fatalf("browser saw %d rows, want 2", gotCount)
	}
}

func TestColumnNames(t *testing.T) {
	t.Parallel()
	path := writeTempFile(t, "d.json", `[{"a":1,"b":2}]`)
	cfg := &rootConfig{}
	it, err := loadIterator(cfg, path, nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	defer func() { _ = it.Close() }()

	cols := columnNames(it)
	if len(cols) != 2 || cols[0] != "a" || cols[1] != "b" {
		t.Fatalf("columns: got %v", cols)
	}
}

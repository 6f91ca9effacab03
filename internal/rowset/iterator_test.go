package rowset

import (
	"encoding/json"
	"errors"
	"io"
	"reflect"
	"testing"
)

// fakeHandle is an in-memory ResultHandle that counts calls so tests
// can assert on memoization and release behavior.
type fakeHandle struct {
	cols       []string
	rows       [][]any
	countCalls int
	fetchCalls int
	releases   int
}

func (h *fakeHandle) FetchRow(index int) (Row, error) {
	h.fetchCalls++
	if index < 0 || index >= len(h.rows) {
		return Row{}, &IndexError{Index: index, Count: len(h.rows)}
	}
	vals := append([]any(nil), h.rows[index]...)
	return NewRow(h.cols, vals), nil
}

func (h *fakeHandle) FetchColumn(field string) ([]any, error) {
	for i, c := range h.cols {
		if c == field {
			vals := make([]any, 0, len(h.rows))
			for _, row := range h.rows {
				vals = append(vals, row[i])
			}
			return vals, nil
		}
	}
	return nil, &FieldError{Field: field}
}

func (h *fakeHandle) CountRows() int {
	h.countCalls++
	return len(h.rows)
}

func (h *fakeHandle) Release() { h.releases++ }

func namesHandle() *fakeHandle {
	return &fakeHandle{
		cols: []string{"name"},
		rows: [][]any{{"a"}, {"b"}, {"c"}},
	}
}

func TestCountMemoized(t *testing.T) {
	t.Parallel()
	h := namesHandle()
	it := New(h)
	defer func() { _ = it.Close() }()

	if got := it.Count(); got != 3 {
		t.Fatalf("Count: got %d, want 3", got)
	}
	// repeated calls and count-dependent predicates must not re-query
	_ = it.Count()
	_ = it.IsEmpty()
	_, _ = it.IsLast()
	_ = it.Valid()
	if h.countCalls != 1 {
		t.Fatalf("CountRows called %d times, want 1", h.countCalls)
	}
}

func TestCountMemoizedAfterTraversal(t *testing.T) {
	t.Parallel()
	h := namesHandle()
	it := New(h)
	defer func() { _ = it.Close() }()

	for it.Next(); it.Valid(); it.Next() {
	}
	if got := it.Count(); got != 3 {
		t.Fatalf("Count after traversal: got %d, want 3", got)
	}
	if h.countCalls != 1 {
		t.Fatalf("CountRows called %d times, want 1", h.countCalls)
	}
}

func TestHasBounds(t *testing.T) {
	t.Parallel()
	it := New(namesHandle())
	defer func() { _ = it.Close() }()

	for i := 0; i < 3; i++ {
		if !it.Has(i) {
			t.Errorf("Has(%d): got false, want true", i)
		}
	}
	if it.Has(3) {
		t.Error("Has(3): got true, want false")
	}
	if it.Has(-1) {
		t.Error("Has(-1): got true, want false")
	}
}

func TestGetOutOfRange(t *testing.T) {
	t.Parallel()
	it := New(namesHandle())
	defer func() { _ = it.Close() }()

	_, err := it.Get(7)
	var ie *IndexError
	if !errors.As(err, &ie) {
		t.Fatalf("Get(7): got %v, want *IndexError", err)
	}
	if ie.Index != 7 || ie.Count != 3 {
		t.Fatalf("IndexError fields: got %+v", ie)
	}
}

func TestSeekAliasesGet(t *testing.T) {
	t.Parallel()
	it := New(namesHandle())
	defer func() { _ = it.Close() }()

	got, err := it.Seek(1)
	if err != nil {
		t.Fatalf("Seek(1): %v", err)
	}
	want, err := it.Get(1)
	if err != nil {
		t.Fatalf("Get(1): %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Seek(1) = %v, Get(1) = %v", got, want)
	}

	_, err = it.Seek(-1)
	var ie *IndexError
	if !errors.As(err, &ie) {
		t.Fatalf("Seek(-1): got %v, want *IndexError", err)
	}
}

func TestExtractMatchesGet(t *testing.T) {
	t.Parallel()
	it := New(namesHandle())
	defer func() { _ = it.Close() }()

	rows, err := it.Extract()
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("Extract: got %d rows, want 3", len(rows))
	}
	for i, row := range rows {
		want, err := it.Get(i)
		if err != nil {
			t.Fatalf("Get(%d): %v", i, err)
		}
		if !reflect.DeepEqual(row, want) {
			t.Errorf("row %d: Extract %v != Get %v", i, row, want)
		}
	}
}

func TestExtractDoesNotMoveCursor(t *testing.T) {
	t.Parallel()
	it := New(namesHandle())
	defer func() { _ = it.Close() }()

	it.Next()
	if _, err := it.Extract(); err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if it.Key() != 1 {
		t.Fatalf("Key after Extract: got %d, want 1", it.Key())
	}
}

func TestMarshalJSONEqualsExtract(t *testing.T) {
	t.Parallel()
	it := New(namesHandle())
	defer func() { _ = it.Close() }()

	got, err := json.Marshal(it)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := `[{"name":"a"},{"name":"b"},{"name":"c"}]`
	if string(got) != want {
		t.Fatalf("Marshal: got %s, want %s", got, want)
	}
}

func TestMarshalJSONEmpty(t *testing.T) {
	t.Parallel()
	it := New(&fakeHandle{cols: []string{"name"}})
	defer func() { _ = it.Close() }()

	got, err := json.Marshal(it)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(got) != "[]" {
		t.Fatalf("Marshal empty: got %s, want []", got)
	}
}

func TestEmptyResult(t *testing.T) {
	t.Parallel()
	h := &fakeHandle{cols: []string{"name"}}
	it := New(h)
	defer func() { _ = it.Close() }()

	if !it.IsEmpty() {
		t.Error("IsEmpty: got false, want true")
	}
	if _, ok := it.IsFirst(); ok {
		t.Error("IsFirst on empty: ok = true, want false")
	}
	if _, ok := it.IsLast(); ok {
		t.Error("IsLast on empty: ok = true, want false")
	}
	if it.Valid() {
		t.Error("Valid on empty: got true, want false")
	}
	if _, err := it.Current(); !errors.Is(err, io.EOF) {
		t.Errorf("Current on empty: got %v, want io.EOF", err)
	}
	if h.fetchCalls != 0 {
		t.Errorf("Current on empty reached the handle: %d fetches", h.fetchCalls)
	}
}

func TestCursorTraversal(t *testing.T) {
	t.Parallel()
	it := New(namesHandle())
	defer func() { _ = it.Close() }()

	if first, ok := it.IsFirst(); !ok || !first {
		t.Fatalf("IsFirst at start: got (%v, %v), want (true, true)", first, ok)
	}

	var got []string
	for ; it.Valid(); it.Next() {
		row, err := it.Current()
		if err != nil {
			t.Fatalf("Current at %d: %v", it.Key(), err)
		}
		v, _ := row.Get("name")
		got = append(got, v.(string))
	}
	if want := []string{"a", "b", "c"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("traversal: got %v, want %v", got, want)
	}

	// cursor ran past the end
	if it.Valid() {
		t.Error("Valid past end: got true")
	}
	if it.Key() != 3 {
		t.Errorf("Key past end: got %d, want 3", it.Key())
	}
}

func TestIsLastAtFinalPosition(t *testing.T) {
	t.Parallel()
	it := New(namesHandle())
	defer func() { _ = it.Close() }()

	for i := 0; i < 2; i++ {
		if last, _ := it.IsLast(); last {
			t.Fatalf("IsLast at %d: got true", it.Key())
		}
		it.Next()
	}
	if last, ok := it.IsLast(); !ok || !last {
		t.Fatalf("IsLast at 2: got (%v, %v), want (true, true)", last, ok)
	}
	it.Next()
	if it.Valid() {
		t.Error("Valid after advancing past last: got true")
	}
}

func TestRewindRestoresValidity(t *testing.T) {
	t.Parallel()
	it := New(namesHandle())
	defer func() { _ = it.Close() }()

	for i := 0; i < 5; i++ {
		it.Next()
	}
	if it.Valid() {
		t.Fatal("Valid at position 5: got true")
	}
	it.Rewind()
	if it.Key() != 0 {
		t.Fatalf("Key after Rewind: got %d, want 0", it.Key())
	}
	if !it.Valid() {
		t.Fatal("Valid after Rewind: got false")
	}
}

func TestParity(t *testing.T) {
	t.Parallel()
	it := New(namesHandle())
	defer func() { _ = it.Close() }()

	want := []string{"even", "odd", "even", "odd"}
	for i, tag := range want {
		if got := it.OddEven(); got != tag {
			t.Errorf("position %d: OddEven = %q, want %q", i, got, tag)
		}
		if it.IsEven() != (tag == "even") || it.IsOdd() != (tag == "odd") {
			t.Errorf("position %d: IsEven/IsOdd disagree with %q", i, tag)
		}
		it.Next()
	}
}

func TestSliceColumn(t *testing.T) {
	t.Parallel()
	it := New(namesHandle())
	defer func() { _ = it.Close() }()

	it.Next() // Slice must ignore the cursor
	vals, err := it.Slice("name")
	if err != nil {
		t.Fatalf("Slice: %v", err)
	}
	if want := []any{"a", "b", "c"}; !reflect.DeepEqual(vals, want) {
		t.Fatalf("Slice: got %v, want %v", vals, want)
	}
	if it.Key() != 1 {
		t.Fatalf("Key after Slice: got %d, want 1", it.Key())
	}
}

func TestSliceUnknownColumn(t *testing.T) {
	t.Parallel()
	it := New(namesHandle())
	defer func() { _ = it.Close() }()

	_, err := it.Slice("nope")
	var fe *FieldError
	if !errors.As(err, &fe) {
		t.Fatalf("Slice(nope): got %v, want *FieldError", err)
	}
	if fe.Field != "nope" {
		t.Fatalf("FieldError field: got %q", fe.Field)
	}
}

func TestCloseIdempotent(t *testing.T) {
	t.Parallel()
	h := namesHandle()
	it := New(h)

	if err := it.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := it.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
	if h.releases != 1 {
		t.Fatalf("Release called %d times, want 1", h.releases)
	}
}

func TestCloseWithoutIteration(t *testing.T) {
	t.Parallel()
	h := &fakeHandle{cols: []string{"name"}}
	it := New(h)
	if err := it.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if h.releases != 1 {
		t.Fatalf("Release called %d times, want 1", h.releases)
	}
	if h.countCalls != 0 || h.fetchCalls != 0 {
		t.Fatalf("Close touched the handle: %d counts, %d fetches", h.countCalls, h.fetchCalls)
	}
}

func TestStreamYieldsAllThenEOF(t *testing.T) {
	t.Parallel()
	it := New(namesHandle())
	defer func() { _ = it.Close() }()

	it.Next() // Stream rewinds before reading
	s := it.Stream()
	var got []string
	for {
		row, err := s.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Fatalf("Stream.Next: %v", err)
		}
		v, _ := row.Get("name")
		got = append(got, v.(string))
	}
	if want := []string{"a", "b", "c"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Stream: got %v, want %v", got, want)
	}
	if _, err := s.Next(); !errors.Is(err, io.EOF) {
		t.Fatal("Stream.Next after EOF: expected io.EOF again")
	}
}

func TestAllIsRestartable(t *testing.T) {
	t.Parallel()
	it := New(namesHandle())
	defer func() { _ = it.Close() }()

	for pass := 0; pass < 2; pass++ {
		var got []string
		for _, row := range it.All() {
			v, _ := row.Get("name")
			got = append(got, v.(string))
		}
		if want := []string{"a", "b", "c"}; !reflect.DeepEqual(got, want) {
			t.Fatalf("pass %d: got %v, want %v", pass, got, want)
		}
	}
}

func TestAllEarlyBreak(t *testing.T) {
	t.Parallel()
	it := New(namesHandle())
	defer func() { _ = it.Close() }()

	var got []int
	for i := range it.All() {
		got = append(got, i)
		if i == 1 {
			break
		}
	}
	if want := []int{0, 1}; !reflect.DeepEqual(got, want) {
		t.Fatalf("early break: got %v, want %v", got, want)
	}
}

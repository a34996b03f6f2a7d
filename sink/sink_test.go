package sink

import (
	"bytes"
	"errors"
	"testing"
)

type failingDest struct{ err error }

func (f failingDest) Write(string) error { return f.err }
func (f failingDest) Close() error       { return f.err }

func TestMemorySinkDrainChronologicalAndResets(t *testing.T) {
	m := NewMemorySink()
	_ = m.Write("a")
	_ = m.Write("b")
	_ = m.Write("c")

	got := m.Drain()
	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}

	if got := m.Drain(); len(got) != 0 {
		t.Fatalf("second drain not empty: %v", got)
	}
}

func TestHandleSinkAppendsNewline(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandleSink(&buf)
	if err := h.Write("|0| hi"); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "|0| hi\n"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestDispatchAggregatesErrorsFromEverySink(t *testing.T) {
	err1 := errors.New("sink1 down")
	err2 := errors.New("sink2 down")
	dests := []OutDest{
		NewMemorySink(),
		failingDest{err: err1},
		failingDest{err: err2},
	}
	err := Dispatch(dests, "line")
	if err == nil {
		t.Fatal("expected aggregated error")
	}
	if !errors.Is(err, err1) || !errors.Is(err, err2) {
		t.Fatalf("aggregated error %v does not wrap both failures", err)
	}
}

func TestDispatchNoErrorWhenAllSucceed(t *testing.T) {
	dests := []OutDest{NewMemorySink(), NewEventsSink()}
	if err := Dispatch(dests, "line"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

package checkyaml

import (
	"io"
	"testing"

	louis "github.com/jcsteh/liblouis"
	"github.com/jcsteh/liblouis/internal/event"
)

type countingSource struct {
	src   event.Source
	pulls int
}

func (c *countingSource) Next() (event.Event, error) {
	c.pulls++
	return c.src.Next()
}

func newTestRunner(events []event.Event) (*Runner, *countingSource) {
	cs := &countingSource{src: event.Replay(events)}
	r := &Runner{File: "doc.yaml"}
	r.src = cs
	r.out = io.Discard
	r.lastLine = 1
	return r, cs
}

func scalar(v string, line int) event.Event {
	return event.Event{Kind: event.KindScalar, Value: v, Line: line}
}

func ev(k event.Kind, line int) event.Event {
	return event.Event{Kind: k, Line: line}
}

func TestExpect_MismatchNamesBothKinds(t *testing.T) {
	r, cs := newTestRunner([]event.Event{
		ev(event.KindSequenceStart, 7),
		scalar("never pulled", 8),
	})
	_, err := r.expect(event.KindScalar)
	if err == nil {
		t.Fatalf("expected mismatch error")
	}
	want := "doc.yaml:7: error: expected scalar (actual sequence-start)"
	if err.Error() != want {
		t.Fatalf("want %q, got %q", want, err.Error())
	}
	if cs.pulls != 1 {
		t.Fatalf("want exactly one pull, got %d", cs.pulls)
	}
}

func TestExpect_ExhaustedStream(t *testing.T) {
	r, _ := newTestRunner(nil)
	_, err := r.expect(event.KindScalar)
	if err == nil {
		t.Fatalf("expected error on exhausted stream")
	}
	ge, ok := AsGrammarError(err)
	if !ok {
		t.Fatalf("want GrammarError, got %T", err)
	}
	if ge.Message != "unexpected end of event stream" {
		t.Fatalf("unexpected message %q", ge.Message)
	}
}

func TestReadTables_JoinsWithCommas(t *testing.T) {
	r, _ := newTestRunner([]event.Event{
		scalar("tables", 1),
		ev(event.KindSequenceStart, 2),
		scalar("a", 2),
		scalar("b", 3),
		scalar("c", 4),
		ev(event.KindSequenceEnd, 4),
	})
	got, err := r.readTables()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "a,b,c" {
		t.Fatalf("want a,b,c, got %q", got)
	}
}

func TestReadTables_Empty(t *testing.T) {
	r, _ := newTestRunner([]event.Event{
		scalar("tables", 1),
		ev(event.KindSequenceStart, 1),
		ev(event.KindSequenceEnd, 1),
	})
	got, err := r.readTables()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "" {
		t.Fatalf("want empty list, got %q", got)
	}
}

func TestReadTables_RejectsComma(t *testing.T) {
	r, _ := newTestRunner([]event.Event{
		scalar("tables", 1),
		ev(event.KindSequenceStart, 1),
		scalar("a,b", 2),
	})
	_, err := r.readTables()
	if err == nil {
		t.Fatalf("expected error for comma in table name")
	}
	ge, ok := AsGrammarError(err)
	if !ok || ge.Line != 2 {
		t.Fatalf("want GrammarError at line 2, got %v", err)
	}
}

func TestReadOptions_ModeOrIsCommutative(t *testing.T) {
	modeEvents := func(names ...string) []event.Event {
		evs := []event.Event{
			scalar("mode", 1),
			ev(event.KindSequenceStart, 1),
		}
		for _, n := range names {
			evs = append(evs, scalar(n, 1))
		}
		return append(evs,
			ev(event.KindSequenceEnd, 1),
			ev(event.KindMappingEnd, 2),
		)
	}

	r1, _ := newTestRunner(modeEvents("noContractions", "dotsIO"))
	o1, err := r1.readOptions()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r2, _ := newTestRunner(modeEvents("dotsIO", "noContractions"))
	o2, err := r2.readOptions()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if o1.Mode != o2.Mode {
		t.Fatalf("mode OR must be order independent: %v vs %v", o1.Mode, o2.Mode)
	}
	if want := louis.NoContractions | louis.DotsIO; o1.Mode != want {
		t.Fatalf("want %v, got %v", want, o1.Mode)
	}
}

func TestReadOptions_XFailTruthySet(t *testing.T) {
	cases := []struct {
		value string
		want  bool
	}{
		{"Y", true},
		{"true", true},
		{"Yes", true},
		{"ON", true},
		{"N", false},
		{"yes", false},
		{"on", false},
		{"TRUE", false},
	}
	for _, tc := range cases {
		r, _ := newTestRunner([]event.Event{
			scalar("xfail", 1),
			scalar(tc.value, 1),
			ev(event.KindMappingEnd, 2),
		})
		opts, err := r.readOptions()
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.value, err)
		}
		if opts.XFail != tc.want {
			t.Fatalf("xfail %q: want %v, got %v", tc.value, tc.want, opts.XFail)
		}
	}
}

func TestReadOptions_TrailingUnknownModeIsIgnored(t *testing.T) {
	r, _ := newTestRunner([]event.Event{
		scalar("mode", 1),
		ev(event.KindSequenceStart, 1),
		scalar("noContractions", 1),
		scalar("bogusMode", 1),
		ev(event.KindSequenceEnd, 1),
		ev(event.KindMappingEnd, 2),
	})
	opts, err := r.readOptions()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.Mode != louis.NoContractions {
		t.Fatalf("want noContractions only, got %v", opts.Mode)
	}
}

func TestReadOptions_UnknownModeMidListIsFatal(t *testing.T) {
	r, _ := newTestRunner([]event.Event{
		scalar("mode", 1),
		ev(event.KindSequenceStart, 1),
		scalar("bogusMode", 1),
		scalar("dotsIO", 1),
		ev(event.KindSequenceEnd, 1),
		ev(event.KindMappingEnd, 2),
	})
	_, err := r.readOptions()
	if err == nil {
		t.Fatalf("expected mismatch after unknown mode name")
	}
	want := "doc.yaml:1: error: expected sequence-end (actual scalar)"
	if err.Error() != want {
		t.Fatalf("want %q, got %q", want, err.Error())
	}
}

func TestReadOptions_BadTypeform(t *testing.T) {
	r, _ := newTestRunner([]event.Event{
		scalar("typeform", 3),
		scalar("01x", 3),
		ev(event.KindMappingEnd, 4),
	})
	_, err := r.readOptions()
	if err == nil {
		t.Fatalf("expected error for malformed typeform")
	}
	ge, ok := AsGrammarError(err)
	if !ok || ge.Line != 3 {
		t.Fatalf("want GrammarError at line 3, got %v", err)
	}
}

func TestReadFlags_RejectsNestedBlock(t *testing.T) {
	r, _ := newTestRunner([]event.Event{
		ev(event.KindMappingStart, 1),
		ev(event.KindSequenceStart, 2),
	})
	err := r.readFlags()
	if err == nil {
		t.Fatalf("expected mismatch for nested block in flags")
	}
	want := "doc.yaml:2: error: expected scalar (actual sequence-start)"
	if err.Error() != want {
		t.Fatalf("want %q, got %q", want, err.Error())
	}
}

// Package checkyaml interprets braille translation test documents. A test
// document names the translation tables to load, an optional set of feature
// flags and an ordered list of test cases; the interpreter validates the
// document against the fixed grammar while streaming every decoded case
// through a translation checker and aggregating pass/fail counts.
//
// The grammar is rigid and the interpreter is fail-fast: the first
// structural violation is returned as a *GrammarError and nothing further
// is consumed from the event stream. Test mismatches, in contrast, are
// counted and reported at the end, so one document can surface many
// independent failures in a single run.
package checkyaml

import (
	"fmt"
	"io"
	"os"

	louis "github.com/jcsteh/liblouis"
	"github.com/jcsteh/liblouis/internal/event"
)

// Summary aggregates the outcome of one run.
type Summary struct {
	Total    int `json:"tests"`
	Failures int `json:"failures"`
}

// Passed reports whether every decoded test case met its expectation.
func (s Summary) Passed() bool { return s.Failures == 0 }

// Runner drives one test document through the checker. File names the
// document in diagnostics, Check judges each decoded case and Out receives
// the progress report (stdout when nil).
type Runner struct {
	File  string
	Check louis.Checker
	Out   io.Writer

	out      io.Writer
	src      event.Source
	lastLine int
	tables   string
	summary  Summary
}

// Run consumes the whole event stream in document order:
// stream-start, document-start, the root mapping with its tables entry,
// optional flags and the test list, then the closing events. It returns
// the aggregated summary; a non-nil error is a fatal grammar violation and
// the summary covers only the cases decoded before it.
func (r *Runner) Run(src event.Source) (Summary, error) {
	r.src = src
	r.out = r.Out
	if r.out == nil {
		r.out = os.Stdout
	}
	r.lastLine = 1
	r.tables = ""
	r.summary = Summary{}
	if r.Check == nil {
		return r.summary, fmt.Errorf("checkyaml: Runner.Check must be set")
	}

	ev, err := r.expect(event.KindStreamStart)
	if err != nil {
		return r.summary, err
	}
	fmt.Fprintf(r.out, "Encoding %s\n", ev.Value)

	if _, err := r.expect(event.KindDocumentStart); err != nil {
		return r.summary, err
	}
	if _, err := r.expect(event.KindMappingStart); err != nil {
		return r.summary, err
	}

	tables, err := r.readTables()
	if err != nil {
		return r.summary, err
	}
	r.tables = tables
	fmt.Fprintf(r.out, "Tables: %s\n", tables)

	ev, err = r.expect(event.KindScalar)
	if err != nil {
		return r.summary, err
	}
	switch ev.Value {
	case "flags":
		if err := r.readFlags(); err != nil {
			return r.summary, err
		}
		ev, err = r.next()
		if err != nil {
			return r.summary, err
		}
		if ev.Kind != event.KindScalar || ev.Value != "tests" {
			return r.summary, r.errorf(ev.Line, "tests expected")
		}
		if err := r.readTests(); err != nil {
			return r.summary, err
		}
	case "tests":
		if err := r.readTests(); err != nil {
			return r.summary, err
		}
	default:
		return r.summary, r.errorf(ev.Line, "flags or tests expected")
	}

	if _, err := r.expect(event.KindMappingEnd); err != nil {
		return r.summary, err
	}
	if _, err := r.expect(event.KindDocumentEnd); err != nil {
		return r.summary, err
	}
	if _, err := r.expect(event.KindStreamEnd); err != nil {
		return r.summary, err
	}

	verdict := "SUCCESS"
	if r.summary.Failures > 0 {
		verdict = "FAILURE"
	}
	fmt.Fprintf(r.out, "%s (%d tests, %d failures)\n", verdict, r.summary.Total, r.summary.Failures)
	return r.summary, nil
}

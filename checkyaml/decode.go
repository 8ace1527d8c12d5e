package checkyaml

import (
	"fmt"
	"strings"

	"github.com/jcsteh/liblouis/internal/event"
)

// maxTableList bounds the joined table list. Test documents list a handful
// of tables; anything near this limit is a malformed document.
const maxTableList = 64 * 1024

// readTables decodes the leading "tables" entry into the comma-joined list
// every test case is checked against.
func (r *Runner) readTables() (string, error) {
	ev, err := r.next()
	if err != nil {
		return "", err
	}
	if ev.Kind != event.KindScalar || ev.Value != "tables" {
		return "", r.errorf(ev.Line, "tables expected")
	}
	if _, err := r.expect(event.KindSequenceStart); err != nil {
		return "", err
	}
	var b strings.Builder
	for {
		ev, err := r.next()
		if err != nil {
			return "", err
		}
		if ev.Kind == event.KindSequenceEnd {
			return b.String(), nil
		}
		if ev.Kind != event.KindScalar {
			return "", r.mismatch(event.KindScalar, ev)
		}
		// The list is joined with commas and read back verbatim, so table
		// names must not contain one.
		if strings.Contains(ev.Value, ",") {
			return "", r.errorf(ev.Line, "table name %q must not contain a comma", ev.Value)
		}
		if b.Len()+len(ev.Value)+1 > maxTableList {
			return "", r.errorf(ev.Line, "table list exceeds %d bytes", maxTableList)
		}
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(ev.Value)
	}
}

// readFlags decodes the optional flags mapping. Flag names are reported and
// otherwise ignored; unknown names are accepted on purpose.
func (r *Runner) readFlags() error {
	if _, err := r.expect(event.KindMappingStart); err != nil {
		return err
	}
	for {
		ev, err := r.next()
		if err != nil {
			return err
		}
		switch ev.Kind {
		case event.KindMappingEnd:
			return nil
		case event.KindScalar:
			fmt.Fprintf(r.out, "Flag %s\n", ev.Value)
		default:
			return r.mismatch(event.KindScalar, ev)
		}
	}
}

// readTest decodes one test case and runs it through the checker. The
// opening sequence-start has already been consumed; readTest consumes
// through the closing sequence-end.
func (r *Runner) readTest() error {
	ev, err := r.next()
	if err != nil {
		return err
	}
	if ev.Kind != event.KindScalar {
		return r.errorf(ev.Line, "Word expected")
	}
	word := ev.Value

	ev, err = r.next()
	if err != nil {
		return err
	}
	if ev.Kind != event.KindScalar {
		return r.errorf(ev.Line, "Translation expected")
	}
	translation := ev.Value

	var opts TestOptions
	ev, err = r.next()
	if err != nil {
		return err
	}
	switch ev.Kind {
	case event.KindMappingStart:
		opts, err = r.readOptions()
		if err != nil {
			return err
		}
		if _, err := r.expect(event.KindSequenceEnd); err != nil {
			return err
		}
	case event.KindSequenceEnd:
		// No options mapping; defaults apply.
	default:
		return r.errorf(ev.Line, "Unexpected event %s", ev.Kind)
	}

	matched := r.Check.Check(r.tables, word, opts.Typeform, translation, opts.Mode)
	r.summary.Total++
	if opts.XFail == matched {
		// Either an unexpected mismatch or an unexpected pass of a case
		// marked xfail.
		r.summary.Failures++
	}
	return nil
}

// readTests decodes the ordered test list, delegating each per-case
// sequence to readTest.
func (r *Runner) readTests() error {
	if _, err := r.expect(event.KindSequenceStart); err != nil {
		return err
	}
	for {
		ev, err := r.next()
		if err != nil {
			return err
		}
		switch ev.Kind {
		case event.KindSequenceEnd:
			return nil
		case event.KindSequenceStart:
			if err := r.readTest(); err != nil {
				return err
			}
		default:
			return r.errorf(ev.Line, "Unexpected event %s", ev.Kind)
		}
	}
}

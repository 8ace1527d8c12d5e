package checkyaml

import (
	louis "github.com/jcsteh/liblouis"
	"github.com/jcsteh/liblouis/internal/event"
)

// TestOptions carries the optional per-case settings of one translation
// test. The zero value is the documented default: no expected failure,
// empty mode, no typeform annotation.
type TestOptions struct {
	XFail    bool
	Mode     louis.Mode
	Typeform []louis.Typeform
}

var modeBits = map[string]louis.Mode{
	"noContractions":    louis.NoContractions,
	"compbrlAtCursor":   louis.CompbrlAtCursor,
	"dotsIO":            louis.DotsIO,
	"comp8Dots":         louis.Comp8Dots,
	"pass1Only":         louis.Pass1Only,
	"compbrlLeftCursor": louis.CompbrlLeftCursor,
	"otherTrans":        louis.OtherTrans,
	"ucBrl":             louis.UCBrl,
}

var xfailTrue = map[string]bool{
	"Y":    true,
	"true": true,
	"Yes":  true,
	"ON":   true,
}

// readOptions decodes the option mapping of one test case. The opening
// mapping-start has already been consumed; readOptions consumes through the
// matching mapping-end and returns the decoded options as an owned value.
func (r *Runner) readOptions() (TestOptions, error) {
	var opts TestOptions
	for {
		ev, err := r.next()
		if err != nil {
			return opts, err
		}
		if ev.Kind != event.KindScalar {
			if ev.Kind != event.KindMappingEnd {
				return opts, r.mismatch(event.KindMappingEnd, ev)
			}
			return opts, nil
		}
		switch ev.Value {
		case "xfail":
			v, err := r.expect(event.KindScalar)
			if err != nil {
				return opts, err
			}
			opts.XFail = xfailTrue[v.Value]
		case "mode":
			if err := r.readModeList(&opts.Mode); err != nil {
				return opts, err
			}
		case "typeform":
			v, err := r.expect(event.KindScalar)
			if err != nil {
				return opts, err
			}
			tf, err := louis.ParseTypeform(v.Value)
			if err != nil {
				return opts, r.errorf(v.Line, "%v", err)
			}
			opts.Typeform = tf
		case "cursorPos", "brlCursorPos":
			// Consumed for grammar completeness; the value plays no role in
			// the forward-translation check.
			if _, err := r.expect(event.KindScalar); err != nil {
				return opts, err
			}
		default:
			return opts, r.errorf(ev.Line, "Unsupported option %s", ev.Value)
		}
	}
}

// readModeList ORs the named mode bits of a mode sequence into mode. An
// unrecognized name ends the list early and the next event must be the
// closing sequence-end; a trailing unknown name is therefore ignored.
// Longstanding harness leniency, kept as is.
func (r *Runner) readModeList(mode *louis.Mode) error {
	if _, err := r.expect(event.KindSequenceStart); err != nil {
		return err
	}
	for {
		ev, err := r.next()
		if err != nil {
			return err
		}
		if ev.Kind != event.KindScalar {
			if ev.Kind != event.KindSequenceEnd {
				return r.mismatch(event.KindSequenceEnd, ev)
			}
			return nil
		}
		bit, ok := modeBits[ev.Value]
		if !ok {
			_, err := r.expect(event.KindSequenceEnd)
			return err
		}
		*mode |= bit
	}
}

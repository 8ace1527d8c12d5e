package checkyaml

import (
	"errors"
	"fmt"

	"github.com/jcsteh/liblouis/internal/event"
)

// GrammarError reports a fatal violation of the test-document grammar. The
// format is rigid, so the interpreter surfaces the first violation and
// stops; there is no resynchronization.
type GrammarError struct {
	File    string
	Line    int
	Message string
}

func (e *GrammarError) Error() string {
	return fmt.Sprintf("%s:%d: error: %s", e.File, e.Line, e.Message)
}

// AsGrammarError extracts a GrammarError from an error chain.
func AsGrammarError(err error) (*GrammarError, bool) {
	var ge *GrammarError
	if errors.As(err, &ge) {
		return ge, true
	}
	return nil, false
}

func (r *Runner) errorf(line int, format string, args ...any) *GrammarError {
	return &GrammarError{File: r.File, Line: line, Message: fmt.Sprintf(format, args...)}
}

// mismatch builds the diagnostic for an event of the wrong kind.
func (r *Runner) mismatch(expected event.Kind, ev event.Event) *GrammarError {
	return r.errorf(ev.Line, "expected %s (actual %s)", expected, ev.Kind)
}

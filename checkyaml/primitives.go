package checkyaml

import (
	"errors"
	"io"

	"github.com/jcsteh/liblouis/internal/event"
)

// next pulls one event, converting source failures into grammar errors.
func (r *Runner) next() (event.Event, error) {
	ev, err := r.src.Next()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return event.Event{}, r.errorf(r.lastLine, "unexpected end of event stream")
		}
		return event.Event{}, r.errorf(r.lastLine, "error in document stream: %v", err)
	}
	r.lastLine = ev.Line
	return ev, nil
}

// expect pulls one event and requires it to be of the given kind.
func (r *Runner) expect(kind event.Kind) (event.Event, error) {
	ev, err := r.next()
	if err != nil {
		return ev, err
	}
	if ev.Kind != kind {
		return ev, r.mismatch(kind, ev)
	}
	return ev, nil
}

package event

import "io"

// Kind represents event kinds from a document stream source.
type Kind int

const (
	KindNone Kind = iota
	KindStreamStart
	KindStreamEnd
	KindDocumentStart
	KindDocumentEnd
	KindAlias
	KindScalar
	KindSequenceStart
	KindSequenceEnd
	KindMappingStart
	KindMappingEnd
)

var kindNames = [...]string{
	"none",
	"stream-start",
	"stream-end",
	"document-start",
	"document-end",
	"alias",
	"scalar",
	"sequence-start",
	"sequence-end",
	"mapping-start",
	"mapping-end",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Event is one step of a forward-only document stream. Scalar and alias
// events carry their text in Value; a stream-start event carries the
// detected input encoding name. Line is 1-based.
type Event struct {
	Kind  Kind
	Value string
	Line  int
}

// Source is a minimal pull interface over a document event stream.
// Next returns io.EOF once the stream-end event has been consumed.
type Source interface {
	Next() (Event, error)
}

type replay struct {
	events []Event
	pos    int
}

// Replay returns a Source serving a fixed event slice.
func Replay(events []Event) Source { return &replay{events: events} }

func (r *replay) Next() (Event, error) {
	if r.pos >= len(r.events) {
		return Event{}, io.EOF
	}
	ev := r.events[r.pos]
	r.pos++
	return ev, nil
}

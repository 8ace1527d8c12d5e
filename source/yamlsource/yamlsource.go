// Package yamlsource adapts YAML documents into the flat event stream
// consumed by the checkyaml interpreter, using gopkg.in/yaml.v3 as the
// underlying parser.
package yamlsource

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/jcsteh/liblouis/internal/event"
)

type source struct {
	events []event.Event
	pos    int
}

// NewReader parses r as a YAML stream and returns an event source over it.
func NewReader(r io.Reader) (event.Source, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return NewBytes(b)
}

// NewBytes parses b as a YAML stream and returns an event source over it.
// The stream is tokenized eagerly, so syntax errors surface here rather
// than mid-stream; the interpreter then only ever sees well-formed events.
func NewBytes(b []byte) (event.Source, error) {
	events := []event.Event{{Kind: event.KindStreamStart, Value: detectEncoding(b), Line: 1}}
	dec := yaml.NewDecoder(bytes.NewReader(b))
	for {
		var doc yaml.Node
		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("yamlsource: %w", err)
		}
		events = append(events, event.Event{Kind: event.KindDocumentStart, Line: doc.Line})
		events = appendNode(events, &doc)
		events = append(events, event.Event{Kind: event.KindDocumentEnd, Line: lastLine(events)})
	}
	events = append(events, event.Event{Kind: event.KindStreamEnd, Line: lastLine(events)})
	return &source{events: events}, nil
}

func (s *source) Next() (event.Event, error) {
	if s.pos >= len(s.events) {
		return event.Event{}, io.EOF
	}
	ev := s.events[s.pos]
	s.pos++
	return ev, nil
}

func appendNode(events []event.Event, n *yaml.Node) []event.Event {
	switch n.Kind {
	case yaml.DocumentNode:
		for _, c := range n.Content {
			events = appendNode(events, c)
		}
	case yaml.MappingNode:
		events = append(events, event.Event{Kind: event.KindMappingStart, Line: n.Line})
		for _, c := range n.Content {
			events = appendNode(events, c)
		}
		events = append(events, event.Event{Kind: event.KindMappingEnd, Line: lastLine(events)})
	case yaml.SequenceNode:
		events = append(events, event.Event{Kind: event.KindSequenceStart, Line: n.Line})
		for _, c := range n.Content {
			events = appendNode(events, c)
		}
		events = append(events, event.Event{Kind: event.KindSequenceEnd, Line: lastLine(events)})
	case yaml.ScalarNode:
		events = append(events, event.Event{Kind: event.KindScalar, Value: n.Value, Line: n.Line})
	case yaml.AliasNode:
		events = append(events, event.Event{Kind: event.KindAlias, Value: n.Value, Line: n.Line})
	}
	return events
}

// lastLine reports the line of the most recently appended event, so that
// synthesized end events point at the construct they close.
func lastLine(events []event.Event) int {
	if len(events) == 0 {
		return 1
	}
	return events[len(events)-1].Line
}

// detectEncoding sniffs the input BOM. yaml.v3 only consumes UTF-8, so this
// is purely informational for the stream-start report line.
func detectEncoding(b []byte) string {
	switch {
	case bytes.HasPrefix(b, []byte{0xEF, 0xBB, 0xBF}):
		return "UTF-8"
	case bytes.HasPrefix(b, []byte{0xFF, 0xFE}):
		return "UTF-16LE"
	case bytes.HasPrefix(b, []byte{0xFE, 0xFF}):
		return "UTF-16BE"
	default:
		return "UTF-8"
	}
}

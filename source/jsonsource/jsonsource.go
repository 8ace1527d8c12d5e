// Package jsonsource adapts JSON documents into the flat event stream
// consumed by the checkyaml interpreter, using goccy/go-json as the
// underlying decoder. Objects become mappings, arrays become sequences and
// every object key or leaf value becomes a scalar, so the same grammar runs
// unchanged over .json test documents.
package jsonsource

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"

	j "github.com/goccy/go-json"

	"github.com/jcsteh/liblouis/internal/event"
)

type source struct {
	events []event.Event
	pos    int
}

// NewReader parses r as a JSON stream and returns an event source over it.
func NewReader(r io.Reader) (event.Source, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return NewBytes(b)
}

// NewBytes parses b as one or more concatenated JSON values and returns an
// event source over them. Each top-level value is framed by its own
// document-start/document-end pair.
func NewBytes(b []byte) (event.Source, error) {
	dec := j.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()

	events := []event.Event{{Kind: event.KindStreamStart, Value: "UTF-8", Line: 1}}
	depth := 0
	inDoc := false
	for {
		tok, err := dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("jsonsource: %w", err)
		}
		line := lineAt(b, dec.InputOffset())
		if !inDoc {
			events = append(events, event.Event{Kind: event.KindDocumentStart, Line: line})
			inDoc = true
		}
		switch v := tok.(type) {
		case j.Delim:
			switch v {
			case '{':
				depth++
				events = append(events, event.Event{Kind: event.KindMappingStart, Line: line})
			case '}':
				depth--
				events = append(events, event.Event{Kind: event.KindMappingEnd, Line: line})
			case '[':
				depth++
				events = append(events, event.Event{Kind: event.KindSequenceStart, Line: line})
			case ']':
				depth--
				events = append(events, event.Event{Kind: event.KindSequenceEnd, Line: line})
			}
		case string:
			events = append(events, event.Event{Kind: event.KindScalar, Value: v, Line: line})
		case j.Number:
			events = append(events, event.Event{Kind: event.KindScalar, Value: string(v), Line: line})
		case float64:
			events = append(events, event.Event{Kind: event.KindScalar, Value: strconv.FormatFloat(v, 'g', -1, 64), Line: line})
		case bool:
			events = append(events, event.Event{Kind: event.KindScalar, Value: strconv.FormatBool(v), Line: line})
		case nil:
			events = append(events, event.Event{Kind: event.KindScalar, Value: "", Line: line})
		}
		if inDoc && depth == 0 {
			events = append(events, event.Event{Kind: event.KindDocumentEnd, Line: line})
			inDoc = false
		}
	}
	if inDoc {
		return nil, fmt.Errorf("jsonsource: unexpected end of input")
	}
	events = append(events, event.Event{Kind: event.KindStreamEnd, Line: lineAt(b, dec.InputOffset())})
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

func lineAt(b []byte, offset int64) int {
	if offset < 0 {
		return 1
	}
	if offset > int64(len(b)) {
		offset = int64(len(b))
	}
	return 1 + bytes.Count(b[:offset], []byte{'\n'})
}

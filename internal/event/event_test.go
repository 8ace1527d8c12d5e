package event

import (
	"io"
	"testing"
)

func TestKindString(t *testing.T) {
	cases := []struct {
		kind Kind
		want string
	}{
		{KindStreamStart, "stream-start"},
		{KindScalar, "scalar"},
		{KindSequenceStart, "sequence-start"},
		{KindMappingEnd, "mapping-end"},
		{Kind(99), "unknown"},
	}
	for _, tc := range cases {
		if got := tc.kind.String(); got != tc.want {
			t.Fatalf("want %s, got %s", tc.want, got)
		}
	}
}

func TestReplay(t *testing.T) {
	src := Replay([]Event{
		{Kind: KindScalar, Value: "a", Line: 1},
		{Kind: KindScalar, Value: "b", Line: 2},
	})
	ev, err := src.Next()
	if err != nil || ev.Value != "a" {
		t.Fatalf("want a, got %v (%v)", ev, err)
	}
	ev, err = src.Next()
	if err != nil || ev.Value != "b" {
		t.Fatalf("want b, got %v (%v)", ev, err)
	}
	if _, err := src.Next(); err != io.EOF {
		t.Fatalf("want io.EOF, got %v", err)
	}
}

// Package louis carries the domain types shared by the braille translation
// test tooling: translation mode flags, per-character typeform styles and
// the checker contract the test-document harness drives.
package louis

import "strings"

// Mode is a bitmask of translation behaviour switches. The bit values match
// the liblouis translationModes constants.
type Mode uint32

const (
	NoContractions Mode = 1 << iota
	CompbrlAtCursor
	DotsIO
	Comp8Dots
	Pass1Only
	CompbrlLeftCursor
	OtherTrans
	UCBrl
)

var modeNames = []struct {
	bit  Mode
	name string
}{
	{NoContractions, "noContractions"},
	{CompbrlAtCursor, "compbrlAtCursor"},
	{DotsIO, "dotsIO"},
	{Comp8Dots, "comp8Dots"},
	{Pass1Only, "pass1Only"},
	{CompbrlLeftCursor, "compbrlLeftCursor"},
	{OtherTrans, "otherTrans"},
	{UCBrl, "ucBrl"},
}

// String lists the set flag names joined by "|", or "0" for the zero mode.
func (m Mode) String() string {
	if m == 0 {
		return "0"
	}
	var b strings.Builder
	for _, mn := range modeNames {
		if m&mn.bit == 0 {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('|')
		}
		b.WriteString(mn.name)
	}
	return b.String()
}

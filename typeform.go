package louis

import "fmt"

// Typeform is a per-character style code (italic, underline, bold, ...).
type Typeform uint8

// ParseTypeform decodes a typeform annotation string into one style code per
// character. The annotation carries a decimal digit per input character, as
// produced by the test-document format.
func ParseTypeform(s string) ([]Typeform, error) {
	out := make([]Typeform, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return nil, fmt.Errorf("typeform annotation %q: invalid character %q at %d", s, c, i)
		}
		out[i] = Typeform(c - '0')
	}
	return out, nil
}

// FormatTypeform is the inverse of ParseTypeform.
func FormatTypeform(tf []Typeform) string {
	b := make([]byte, len(tf))
	for i, t := range tf {
		b[i] = byte('0' + t%10)
	}
	return string(b)
}

package louis

import (
	"fmt"
	"os/exec"
	"strings"
)

// Checker judges whether translating word against the given comma-joined
// table list, with the given typeform and mode, produces the expected
// output. Implementations are black boxes to the harness; only the boolean
// verdict is consumed.
type Checker interface {
	Check(tables, word string, typeform []Typeform, expected string, mode Mode) bool
}

// CheckerFunc adapts a plain function to the Checker interface.
type CheckerFunc func(tables, word string, typeform []Typeform, expected string, mode Mode) bool

func (f CheckerFunc) Check(tables, word string, typeform []Typeform, expected string, mode Mode) bool {
	return f(tables, word, typeform, expected, mode)
}

// CommandChecker returns a Checker that shells out to an external
// translation command. The word is piped on stdin and the produced
// translation, with a single trailing newline stripped, is compared against
// the expected output. The table list is passed as the first argument;
// non-default mode and typeform settings are passed as --mode and
// --typeform flags. Any execution failure counts as a non-match.
func CommandChecker(name string) Checker {
	return CheckerFunc(func(tables, word string, typeform []Typeform, expected string, mode Mode) bool {
		args := []string{"--forward", tables}
		if mode != 0 {
			args = append(args, fmt.Sprintf("--mode=%d", uint32(mode)))
		}
		if len(typeform) > 0 {
			args = append(args, "--typeform="+FormatTypeform(typeform))
		}
		cmd := exec.Command(name, args...)
		cmd.Stdin = strings.NewReader(word)
		out, err := cmd.Output()
		if err != nil {
			return false
		}
		return strings.TrimSuffix(string(out), "\n") == expected
	})
}

package termcolor

import (
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/jwalton/go-supportscolor"
	"github.com/mattn/go-colorable"
	"golang.org/x/term"
)

// ColorChoice is the user's preference for colored output.
type ColorChoice int

const (
	// Auto colors output when the destination is a terminal that supports
	// color and NO_COLOR is not set.
	Auto ColorChoice = iota
	// Always colors output, translating escapes for legacy Windows consoles.
	Always
	// AlwaysAnsi colors output with raw ANSI escapes and no translation.
	AlwaysAnsi
	// Never disables color.
	Never
)

var choiceNames = [...]string{"auto", "always", "always-ansi", "never"}

// ColorChoiceNames lists the accepted spellings, in declaration order.
func ColorChoiceNames() []string {
	return choiceNames[:]
}

func (c ColorChoice) String() string {
	if c >= 0 && int(c) < len(choiceNames) {
		return choiceNames[c]
	}
	return "unknown"
}

// ParseColorChoice parses the names produced by ColorChoice.String.
func ParseColorChoice(s string) (ColorChoice, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range choiceNames {
		if s == name {
			return ColorChoice(i), nil
		}
	}
	return 0, errors.Errorf("unknown color choice %q (expected one of %s)", s, strings.Join(choiceNames[:], ", "))
}

// ShouldAttemptColor reports whether output to f should be colored.
func (c ColorChoice) ShouldAttemptColor(f *os.File) bool {
	if c != Auto {
		return resolveChoice(c, false, false)
	}
	_, noColor := os.LookupEnv("NO_COLOR")
	if noColor {
		return false
	}
	tty := term.IsTerminal(int(f.Fd()))
	return resolveChoice(c, tty, tty && supportscolor.SupportsColor(f.Fd()).SupportsColor)
}

func resolveChoice(c ColorChoice, tty, supported bool) bool {
	switch c {
	case Always, AlwaysAnsi:
		return true
	case Never:
		return false
	default:
		return tty && supported
	}
}

// NewStandardStream returns the sink for f. The choice is resolved once;
// a stream that should not be colored is a NoColor sink.
func NewStandardStream(f *os.File, choice ColorChoice) WriteColor {
	if !choice.ShouldAttemptColor(f) {
		return NewNoColor(f)
	}
	if choice == AlwaysAnsi {
		return NewAnsi(f)
	}
	return NewAnsi(colorable.NewColorable(f))
}

// Package termcolor describes terminal styles independently of any backend
// and provides the sinks that know how to apply them.
package termcolor

import (
	"strconv"
	"strings"

	"fortio.org/safecast"
	"github.com/cockroachdb/errors"
)

// Color is a terminal color. The zero value means no color is set.
type Color uint16

// The eight standard ANSI colors.
const (
	Black Color = iota + 1
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
)

const indexedFlag Color = 1 << 8

var colorNames = [...]string{"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white"}

// Ansi256 returns the color with the given 256-color palette index.
func Ansi256(n uint8) Color {
	return indexedFlag | Color(n)
}

// IsSet reports whether c names a color.
func (c Color) IsSet() bool {
	return c != 0
}

// Named reports the standard ANSI number (0-7) of c, if c is one of the
// eight named colors.
func (c Color) Named() (n uint8, ok bool) {
	if c >= Black && c <= White {
		return uint8(c - Black), true
	}
	return 0, false
}

// Index reports the palette index of a color created with Ansi256.
func (c Color) Index() (n uint8, ok bool) {
	if c&indexedFlag != 0 {
		return uint8(c &^ indexedFlag), true
	}
	return 0, false
}

func (c Color) String() string {
	if n, ok := c.Named(); ok {
		return colorNames[n]
	}
	if n, ok := c.Index(); ok {
		return strconv.Itoa(int(n))
	}
	return "none"
}

// ParseColor parses a color name ("red", "blue", ...) or a decimal
// 256-color palette index ("208").
func ParseColor(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range colorNames {
		if s == name {
			return Black + Color(i), nil
		}
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Errorf("unknown color %q", s)
	}
	idx, err := safecast.Conv[uint8](n)
	if err != nil {
		return 0, errors.Errorf("color index %d out of range [0, 255]", n)
	}
	return Ansi256(idx), nil
}

package termcolor

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestColorSpecString(t *testing.T) {
	c := qt.New(t)
	tests := []struct {
		spec ColorSpec
		want string
	}{
		{ColorSpec{}, "none"},
		{ColorSpec{Fg: Red}, "fg:red"},
		{ColorSpec{Fg: Red, Bold: true, Intense: true}, "fg:red bold intense"},
		{ColorSpec{Bold: true, Intense: true}, "bold intense"},
		{ColorSpec{Fg: Ansi256(208), Bg: Black, Underline: true, Italic: true, Dimmed: true}, "fg:208 bg:black underline italic dimmed"},
	}
	for _, test := range tests {
		c.Assert(test.spec.String(), qt.Equals, test.want)

		parsed, err := ParseColorSpec(test.want)
		c.Assert(err, qt.IsNil)
		c.Assert(parsed, qt.Equals, test.spec)
	}
}

func TestParseColorSpecErrors(t *testing.T) {
	c := qt.New(t)

	_, err := ParseColorSpec("fg:red shiny")
	c.Assert(err, qt.ErrorMatches, `invalid term "shiny"`)

	_, err = ParseColorSpec("fg:mauve")
	c.Assert(err, qt.ErrorMatches, `invalid term "fg:mauve": unknown color "mauve"`)

	_, err = ParseColorSpec("ul:red")
	c.Assert(err, qt.ErrorMatches, `invalid term "ul:red": unknown key "ul"`)
}

func TestColorSpecIsNone(t *testing.T) {
	c := qt.New(t)
	c.Assert(ColorSpec{}.IsNone(), qt.IsTrue)
	c.Assert(ColorSpec{Italic: true}.IsNone(), qt.IsFalse)

	spec, err := ParseColorSpec("")
	c.Assert(err, qt.IsNil)
	c.Assert(spec.IsNone(), qt.IsTrue)
}

package term

import (
	"runtime"
	"testing"

	qt "github.com/frankban/quicktest"

	"codespan.dev/pkg/diagnostic"
	"codespan.dev/pkg/termcolor"
)

func TestHeader(t *testing.T) {
	c := qt.New(t)
	s := DefaultStyles()

	want := map[diagnostic.Severity]string{
		diagnostic.Bug:     "fg:red bold intense",
		diagnostic.Error:   "fg:red bold intense",
		diagnostic.Warning: "fg:yellow bold intense",
		diagnostic.Note:    "fg:green bold intense",
		diagnostic.Help:    "fg:cyan bold intense",
	}
	for _, sev := range diagnostic.Severities {
		c.Assert(s.Header(sev).String(), qt.Equals, want[sev], qt.Commentf("severity %v", sev))
	}
	c.Assert(s.Header(diagnostic.Bug), qt.Equals, s.Header(diagnostic.Error))
	c.Assert(s.HeaderMessageSpec().String(), qt.Equals, "bold intense")
}

func TestSecondaryLabelIsShared(t *testing.T) {
	c := qt.New(t)
	s := DefaultStyles()
	want := s.Label(diagnostic.Bug, diagnostic.Secondary)
	for _, sev := range diagnostic.Severities {
		c.Assert(s.Label(sev, diagnostic.Secondary), qt.Equals, want)
	}
	c.Assert(want, qt.Equals, termcolor.ColorSpec{Fg: DefaultAccent})
}

func TestPrimaryLabel(t *testing.T) {
	c := qt.New(t)
	s := DefaultStyles()

	seen := make(map[termcolor.ColorSpec]diagnostic.Severity)
	for _, sev := range diagnostic.Severities {
		label := s.Label(sev, diagnostic.Primary)
		header := s.Header(sev)

		c.Assert(label.Fg, qt.Equals, header.Fg)
		c.Assert(label.Bold, qt.IsFalse)
		c.Assert(label.Intense, qt.IsFalse)
		c.Assert(header.Bold && header.Intense, qt.IsTrue)

		if prev, ok := seen[label]; ok {
			// Only bug and error share a color.
			c.Assert([]diagnostic.Severity{prev, sev}, qt.DeepEquals, []diagnostic.Severity{diagnostic.Bug, diagnostic.Error})
		}
		seen[label] = sev
	}
	c.Assert(seen, qt.HasLen, 4)
}

func TestAccentsAreAliased(t *testing.T) {
	c := qt.New(t)
	for _, s := range []Styles{DefaultStyles(), StylesWithAccent(termcolor.Magenta), StylesWithAccent(termcolor.Ansi256(33))} {
		c.Assert(s.LineNumberSpec(), qt.Equals, s.SourceBorderSpec())
		c.Assert(s.SourceBorderSpec(), qt.Equals, s.NoteBulletSpec())
	}
}

func TestStylesWithAccent(t *testing.T) {
	c := qt.New(t)
	x := StylesWithAccent(termcolor.Magenta)
	y := StylesWithAccent(termcolor.White)

	for _, s := range []struct {
		styles Styles
		accent termcolor.Color
	}{{x, termcolor.Magenta}, {y, termcolor.White}} {
		want := termcolor.ColorSpec{Fg: s.accent}
		c.Assert(s.styles.LineNumberSpec(), qt.Equals, want)
		c.Assert(s.styles.SourceBorderSpec(), qt.Equals, want)
		c.Assert(s.styles.NoteBulletSpec(), qt.Equals, want)
		c.Assert(s.styles.Accent(), qt.Equals, s.accent)
	}

	// Changing the accent changes the accent roles together and leaves the
	// severity colors alone.
	y.LineNumber, y.SourceBorder, y.NoteBullet, y.SecondaryLabel = x.LineNumber, x.SourceBorder, x.NoteBullet, x.SecondaryLabel
	c.Assert(y, qt.Equals, x)
}

func TestDefaultAccent(t *testing.T) {
	c := qt.New(t)
	want := termcolor.Blue
	if runtime.GOOS == "windows" {
		want = termcolor.Cyan
	}
	c.Assert(DefaultAccent, qt.Equals, want)
	s := DefaultStyles()
	c.Assert(s.Accent(), qt.Equals, want)
}

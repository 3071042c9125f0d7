package termcolor

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/lipgloss"
	qt "github.com/frankban/quicktest"
	"github.com/muesli/termenv"
)

func TestAnsi(t *testing.T) {
	c := qt.New(t)
	var out bytes.Buffer
	w := NewAnsi(&out)
	c.Assert(w.SupportsColor(), qt.IsTrue)

	c.Assert(w.SetColor(ColorSpec{Fg: Red}), qt.IsNil)
	_, _ = io.WriteString(w, "a")
	c.Assert(w.SetColor(ColorSpec{Fg: Red, Bold: true, Intense: true}), qt.IsNil)
	_, _ = io.WriteString(w, "b")
	c.Assert(w.SetColor(ColorSpec{}), qt.IsNil)
	c.Assert(w.Reset(), qt.IsNil)
	c.Assert(w.Flush(), qt.IsNil)

	c.Assert(out.String(), qt.Equals,
		"\x1b[0m\x1b[31ma"+
			"\x1b[0m\x1b[1;91mb"+
			"\x1b[0m"+
			"\x1b[0m")
}

type failingWriter struct{ err error }

func (f failingWriter) Write([]byte) (int, error) { return 0, f.err }

func TestAnsiWriteError(t *testing.T) {
	c := qt.New(t)
	errBroken := errors.New("broken pipe")
	w := NewAnsi(failingWriter{errBroken})

	c.Assert(w.SetColor(ColorSpec{Fg: Blue}), qt.Equals, errBroken)
	c.Assert(w.Reset(), qt.Equals, errBroken)
}

func TestNoColor(t *testing.T) {
	c := qt.New(t)
	var out bytes.Buffer
	w := NewNoColor(&out)
	c.Assert(w.SupportsColor(), qt.IsFalse)
	c.Assert(w.SetColor(ColorSpec{Fg: Green}), qt.IsNil)
	_, _ = io.WriteString(w, "plain")
	c.Assert(w.Reset(), qt.IsNil)
	c.Assert(out.String(), qt.Equals, "plain")
}

func TestBuffer(t *testing.T) {
	c := qt.New(t)
	write := func(b *Buffer) string {
		_ = b.SetColor(ColorSpec{Fg: Yellow, Bold: true})
		_, _ = io.WriteString(b, "warning")
		_ = b.Reset()
		_, _ = io.WriteString(b, ": careful")
		return b.String()
	}

	c.Assert(write(NewBuffer(PlainBuffer)), qt.Equals, "warning: careful")
	c.Assert(write(NewBuffer(MarkupBuffer)), qt.Equals, "{fg:yellow bold}warning{/}: careful")
	c.Assert(write(NewBuffer(AnsiBuffer)), qt.Equals, "\x1b[0m\x1b[1;33mwarning\x1b[0m: careful")

	b := NewBuffer(MarkupBuffer)
	c.Assert(b.SupportsColor(), qt.IsTrue)
	_, _ = io.WriteString(b, "x")
	b.Clear()
	c.Assert(b.Bytes(), qt.HasLen, 0)
	c.Assert(NewBuffer(PlainBuffer).SupportsColor(), qt.IsFalse)
}

func TestStyled(t *testing.T) {
	c := qt.New(t)

	plain := lipgloss.NewRenderer(io.Discard)
	plain.SetColorProfile(termenv.Ascii)
	s := NewStyled(plain)
	c.Assert(s.SupportsColor(), qt.IsFalse)
	c.Assert(s.SetColor(ColorSpec{Fg: Red, Bold: true}), qt.IsNil)
	_, _ = io.WriteString(s, "error\nnext")
	c.Assert(s.Reset(), qt.IsNil)
	_, _ = io.WriteString(s, "!")
	c.Assert(s.String(), qt.Equals, "error\nnext!")

	colored := lipgloss.NewRenderer(io.Discard)
	colored.SetColorProfile(termenv.ANSI256)
	s = NewStyled(colored)
	c.Assert(s.SupportsColor(), qt.IsTrue)
	c.Assert(s.SetColor(ColorSpec{Fg: Cyan}), qt.IsNil)
	_, _ = io.WriteString(s, "help")
	c.Assert(s.String(), qt.Contains, "\x1b[")
	c.Assert(s.String(), qt.Contains, "help")
}

func TestLipglossColor(t *testing.T) {
	c := qt.New(t)
	c.Assert(lipglossColor(Red, false), qt.Equals, lipgloss.Color("1"))
	c.Assert(lipglossColor(Red, true), qt.Equals, lipgloss.Color("9"))
	c.Assert(lipglossColor(Ansi256(208), true), qt.Equals, lipgloss.Color("208"))
}

func TestFlush(t *testing.T) {
	c := qt.New(t)
	c.Assert(Flush(&bytes.Buffer{}), qt.IsNil)

	f := &flushRecorder{}
	c.Assert(NewNoColor(f).Flush(), qt.IsNil)
	c.Assert(f.flushed, qt.IsTrue)
}

func TestClearScreen(t *testing.T) {
	c := qt.New(t)
	var buf bytes.Buffer
	c.Assert(ClearScreen(NewAnsi(&buf)), qt.IsNil)
	c.Assert(buf.String(), qt.Equals, "\x1b[1;1H\x1b[2J")

	buf.Reset()
	c.Assert(ClearScreen(NewNoColor(&buf)), qt.IsNil)
	c.Assert(buf.Len(), qt.Equals, 0)
}

type flushRecorder struct {
	bytes.Buffer
	flushed bool
}

func (f *flushRecorder) Flush() error {
	f.flushed = true
	return nil
}

func TestColorChoice(t *testing.T) {
	c := qt.New(t)
	for i, name := range ColorChoiceNames() {
		choice, err := ParseColorChoice(name)
		c.Assert(err, qt.IsNil)
		c.Assert(choice, qt.Equals, ColorChoice(i))
		c.Assert(choice.String(), qt.Equals, name)
	}
	_, err := ParseColorChoice("sometimes")
	c.Assert(err, qt.ErrorMatches, `unknown color choice "sometimes" .*`)

	c.Assert(resolveChoice(Auto, true, true), qt.IsTrue)
	c.Assert(resolveChoice(Auto, true, false), qt.IsFalse)
	c.Assert(resolveChoice(Auto, false, true), qt.IsFalse)
	c.Assert(resolveChoice(Always, false, false), qt.IsTrue)
	c.Assert(resolveChoice(AlwaysAnsi, false, false), qt.IsTrue)
	c.Assert(resolveChoice(Never, true, true), qt.IsFalse)
}

func TestNewStandardStream(t *testing.T) {
	c := qt.New(t)
	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	c.Assert(err, qt.IsNil)
	defer f.Close()

	// A regular file is never a terminal.
	c.Assert(Auto.ShouldAttemptColor(f), qt.IsFalse)
	c.Assert(NewStandardStream(f, Auto).SupportsColor(), qt.IsFalse)
	c.Assert(NewStandardStream(f, Never).SupportsColor(), qt.IsFalse)
	c.Assert(NewStandardStream(f, Always).SupportsColor(), qt.IsTrue)

	w := NewStandardStream(f, AlwaysAnsi)
	c.Assert(w.SetColor(ColorSpec{Fg: Green}), qt.IsNil)
	_, err = io.WriteString(w, "ok")
	c.Assert(err, qt.IsNil)
	c.Assert(w.Reset(), qt.IsNil)

	data, err := os.ReadFile(f.Name())
	c.Assert(err, qt.IsNil)
	c.Assert(string(data), qt.Equals, "\x1b[0m\x1b[32mok\x1b[0m")
}

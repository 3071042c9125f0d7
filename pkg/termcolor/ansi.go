package termcolor

import (
	"io"

	"github.com/logrusorgru/aurora/v3"
)

const resetEscape = "\x1b[0m"

// Ansi writes styles as ANSI escape sequences.
type Ansi struct {
	w io.Writer
}

var _ WriteColor = (*Ansi)(nil)

// NewAnsi returns a sink writing escape sequences and text to w.
func NewAnsi(w io.Writer) *Ansi {
	return &Ansi{w: w}
}

func (a *Ansi) Write(p []byte) (int, error) {
	return a.w.Write(p)
}

func (a *Ansi) SupportsColor() bool {
	return true
}

// SetColor resets any previous style and then applies spec.
func (a *Ansi) SetColor(spec ColorSpec) error {
	if err := a.Reset(); err != nil {
		return err
	}
	if spec.IsNone() {
		return nil
	}
	_, err := io.WriteString(a.w, "\x1b["+auroraColor(spec).Nos(false)+"m")
	return err
}

func (a *Ansi) Reset() error {
	_, err := io.WriteString(a.w, resetEscape)
	return err
}

func (a *Ansi) Flush() error {
	return Flush(a.w)
}

// ClearScreen clears the whole screen and moves the cursor to the top left.
func (a *Ansi) ClearScreen() error {
	_, err := io.WriteString(a.w, "\x1b[1;1H\x1b[2J")
	return err
}

var (
	namedFg = [...]aurora.Color{aurora.BlackFg, aurora.RedFg, aurora.GreenFg, aurora.YellowFg,
		aurora.BlueFg, aurora.MagentaFg, aurora.CyanFg, aurora.WhiteFg}
	namedBg = [...]aurora.Color{aurora.BlackBg, aurora.RedBg, aurora.GreenBg, aurora.YellowBg,
		aurora.BlueBg, aurora.MagentaBg, aurora.CyanBg, aurora.WhiteBg}
)

// auroraColor maps spec onto aurora's bit set. Intense selects the bright
// variant of named colors; it has no effect on palette indexes.
func auroraColor(spec ColorSpec) aurora.Color {
	var c aurora.Color
	if spec.Bold {
		c |= aurora.BoldFm
	}
	if spec.Dimmed {
		c |= aurora.FaintFm
	}
	if spec.Italic {
		c |= aurora.ItalicFm
	}
	if spec.Underline {
		c |= aurora.UnderlineFm
	}

	if n, ok := spec.Fg.Named(); ok {
		c |= namedFg[n]
		if spec.Intense {
			c |= aurora.BrightFg
		}
	} else if n, ok := spec.Fg.Index(); ok {
		c |= aurora.Index(n, nil).Color()
	}

	if n, ok := spec.Bg.Named(); ok {
		c |= namedBg[n]
		if spec.Intense {
			c |= aurora.BrightBg
		}
	} else if n, ok := spec.Bg.Index(); ok {
		c |= aurora.BgIndex(n, nil).Color()
	}
	return c
}

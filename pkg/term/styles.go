package term

import (
	"codespan.dev/pkg/diagnostic"
	"codespan.dev/pkg/termcolor"
)

// Styles are the colors used when rendering a diagnostic.
type Styles struct {
	// HeaderBug styles bug headers. Defaults to "fg:red bold intense".
	HeaderBug termcolor.ColorSpec
	// HeaderError styles error headers. Defaults to "fg:red bold intense".
	HeaderError termcolor.ColorSpec
	// HeaderWarning styles warning headers. Defaults to "fg:yellow bold intense".
	HeaderWarning termcolor.ColorSpec
	// HeaderNote styles note headers. Defaults to "fg:green bold intense".
	HeaderNote termcolor.ColorSpec
	// HeaderHelp styles help headers. Defaults to "fg:cyan bold intense".
	HeaderHelp termcolor.ColorSpec
	// HeaderMessage styles the message of a header. Defaults to "bold intense".
	HeaderMessage termcolor.ColorSpec

	// PrimaryLabelBug styles primary labels of bugs. Defaults to "fg:red".
	PrimaryLabelBug termcolor.ColorSpec
	// PrimaryLabelError styles primary labels of errors. Defaults to "fg:red".
	PrimaryLabelError termcolor.ColorSpec
	// PrimaryLabelWarning styles primary labels of warnings. Defaults to "fg:yellow".
	PrimaryLabelWarning termcolor.ColorSpec
	// PrimaryLabelNote styles primary labels of notes. Defaults to "fg:green".
	PrimaryLabelNote termcolor.ColorSpec
	// PrimaryLabelHelp styles primary labels of help messages. Defaults to "fg:cyan".
	PrimaryLabelHelp termcolor.ColorSpec
	// SecondaryLabel styles secondary labels of every severity.
	// Defaults to "fg:blue" ("fg:cyan" on Windows).
	SecondaryLabel termcolor.ColorSpec

	// LineNumber styles line numbers. Defaults to "fg:blue" ("fg:cyan" on Windows).
	LineNumber termcolor.ColorSpec
	// SourceBorder styles the left border of source snippets.
	// Defaults to "fg:blue" ("fg:cyan" on Windows).
	SourceBorder termcolor.ColorSpec
	// NoteBullet styles note bullets. Defaults to "fg:blue" ("fg:cyan" on Windows).
	NoteBullet termcolor.ColorSpec
}

// Header returns the style of a header at the given severity.
func (s *Styles) Header(sev diagnostic.Severity) termcolor.ColorSpec {
	switch sev {
	case diagnostic.Bug:
		return s.HeaderBug
	case diagnostic.Error:
		return s.HeaderError
	case diagnostic.Warning:
		return s.HeaderWarning
	case diagnostic.Note:
		return s.HeaderNote
	default:
		return s.HeaderHelp
	}
}

func (s *Styles) HeaderMessageSpec() termcolor.ColorSpec { return s.HeaderMessage }
func (s *Styles) LineNumberSpec() termcolor.ColorSpec    { return s.LineNumber }
func (s *Styles) SourceBorderSpec() termcolor.ColorSpec  { return s.SourceBorder }
func (s *Styles) NoteBulletSpec() termcolor.ColorSpec    { return s.NoteBullet }

// Label returns the style of a label at the given severity.
// Secondary labels share one style regardless of severity.
func (s *Styles) Label(sev diagnostic.Severity, style diagnostic.LabelStyle) termcolor.ColorSpec {
	if style == diagnostic.Secondary {
		return s.SecondaryLabel
	}
	switch sev {
	case diagnostic.Bug:
		return s.PrimaryLabelBug
	case diagnostic.Error:
		return s.PrimaryLabelError
	case diagnostic.Warning:
		return s.PrimaryLabelWarning
	case diagnostic.Note:
		return s.PrimaryLabelNote
	default:
		return s.PrimaryLabelHelp
	}
}

// Accent reports the color shared by line numbers, source borders and note bullets.
func (s *Styles) Accent() termcolor.Color {
	return s.LineNumber.Fg
}

// StylesWithAccent returns the default styles with accent used for line
// numbers, source borders, note bullets and secondary labels.
// The severity colors are fixed.
func StylesWithAccent(accent termcolor.Color) Styles {
	header := func(fg termcolor.Color) termcolor.ColorSpec {
		return termcolor.ColorSpec{Fg: fg, Bold: true, Intense: true}
	}
	fg := func(c termcolor.Color) termcolor.ColorSpec {
		return termcolor.ColorSpec{Fg: c}
	}

	return Styles{
		HeaderBug:     header(termcolor.Red),
		HeaderError:   header(termcolor.Red),
		HeaderWarning: header(termcolor.Yellow),
		HeaderNote:    header(termcolor.Green),
		HeaderHelp:    header(termcolor.Cyan),
		HeaderMessage: termcolor.ColorSpec{Bold: true, Intense: true},

		PrimaryLabelBug:     fg(termcolor.Red),
		PrimaryLabelError:   fg(termcolor.Red),
		PrimaryLabelWarning: fg(termcolor.Yellow),
		PrimaryLabelNote:    fg(termcolor.Green),
		PrimaryLabelHelp:    fg(termcolor.Cyan),
		SecondaryLabel:      fg(accent),

		LineNumber:   fg(accent),
		SourceBorder: fg(accent),
		NoteBullet:   fg(accent),
	}
}

// DefaultStyles returns the default styles for the current platform.
func DefaultStyles() Styles {
	return StylesWithAccent(DefaultAccent)
}

package term

import (
	"codespan.dev/pkg/diagnostic"
	"codespan.dev/pkg/termcolor"
)

// WriteStyle is the output a renderer draws diagnostics to. It styles output
// by semantic role so the renderer never handles concrete colors.
type WriteStyle interface {
	Write(p []byte) (int, error)

	SetHeader(sev diagnostic.Severity) error
	SetHeaderMessage() error
	SetLineNumber() error
	SetNoteBullet() error
	SetSourceBorder() error
	SetLabel(sev diagnostic.Severity, style diagnostic.LabelStyle) error
	Reset() error
}

// StylesWriter applies styles from a palette to a color sink.
// The palette is borrowed and must not be modified while in use.
type StylesWriter struct {
	w      termcolor.WriteColor
	styles *Styles
}

var _ WriteStyle = (*StylesWriter)(nil)

// NewStylesWriter returns a writer styling w according to styles.
func NewStylesWriter(w termcolor.WriteColor, styles *Styles) *StylesWriter {
	return &StylesWriter{w: w, styles: styles}
}

// Styled returns a writer styling w according to GlobalStyles.
func Styled(w termcolor.WriteColor) *StylesWriter {
	return NewStylesWriter(w, GlobalStyles())
}

func (sw *StylesWriter) Write(p []byte) (int, error) {
	return sw.w.Write(p)
}

// Flush flushes the underlying sink if it buffers output.
func (sw *StylesWriter) Flush() error {
	return termcolor.Flush(sw.w)
}

func (sw *StylesWriter) SetHeader(sev diagnostic.Severity) error {
	return sw.w.SetColor(sw.styles.Header(sev))
}

func (sw *StylesWriter) SetHeaderMessage() error {
	return sw.w.SetColor(sw.styles.HeaderMessage)
}

func (sw *StylesWriter) SetLineNumber() error {
	return sw.w.SetColor(sw.styles.LineNumber)
}

func (sw *StylesWriter) SetNoteBullet() error {
	return sw.w.SetColor(sw.styles.NoteBullet)
}

func (sw *StylesWriter) SetSourceBorder() error {
	return sw.w.SetColor(sw.styles.SourceBorder)
}

func (sw *StylesWriter) SetLabel(sev diagnostic.Severity, style diagnostic.LabelStyle) error {
	return sw.w.SetColor(sw.styles.Label(sev, style))
}

func (sw *StylesWriter) Reset() error {
	return sw.w.Reset()
}

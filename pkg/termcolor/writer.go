package termcolor

import "io"

// WriteColor is a writer that can change the style of subsequent writes.
type WriteColor interface {
	io.Writer

	// SupportsColor reports whether SetColor has any visible effect.
	SupportsColor() bool
	// SetColor applies spec to everything written until the next
	// SetColor or Reset call.
	SetColor(spec ColorSpec) error
	// Reset clears any style so subsequent writes are unstyled.
	Reset() error
}

// Flush flushes w if it buffers output, and is a no-op otherwise.
func Flush(w io.Writer) error {
	if f, ok := w.(interface{ Flush() error }); ok {
		return f.Flush()
	}
	return nil
}

// ClearScreen clears the terminal w is writing to, if w writes escape
// sequences, and is a no-op otherwise.
func ClearScreen(w io.Writer) error {
	if c, ok := w.(interface{ ClearScreen() error }); ok {
		return c.ClearScreen()
	}
	return nil
}

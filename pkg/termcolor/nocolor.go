package termcolor

import "io"

// NoColor passes writes through and ignores all style changes.
type NoColor struct {
	w io.Writer
}

var _ WriteColor = (*NoColor)(nil)

func NewNoColor(w io.Writer) *NoColor {
	return &NoColor{w: w}
}

func (n *NoColor) Write(p []byte) (int, error) { return n.w.Write(p) }
func (n *NoColor) SupportsColor() bool          { return false }
func (n *NoColor) SetColor(ColorSpec) error     { return nil }
func (n *NoColor) Reset() error                 { return nil }
func (n *NoColor) Flush() error                 { return Flush(n.w) }

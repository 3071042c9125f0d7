package termcolor

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styled collects output as a string rendered with lipgloss, for embedding
// diagnostics inside a Bubble Tea view or any other lipgloss layout.
type Styled struct {
	r     *lipgloss.Renderer
	style lipgloss.Style
	set   bool
	b     strings.Builder
}

var _ WriteColor = (*Styled)(nil)

// NewStyled returns a sink rendering with r. If r is nil the lipgloss
// default renderer is used.
func NewStyled(r *lipgloss.Renderer) *Styled {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &Styled{r: r}
}

// Write renders p in the current style. Newlines are written unstyled so
// that lipgloss does not pad multi-line segments to a common width.
func (s *Styled) Write(p []byte) (int, error) {
	if !s.set {
		s.b.Write(p)
		return len(p), nil
	}
	for i, line := range strings.Split(string(p), "\n") {
		if i > 0 {
			s.b.WriteByte('\n')
		}
		if line != "" {
			s.b.WriteString(s.style.Render(line))
		}
	}
	return len(p), nil
}

func (s *Styled) SupportsColor() bool {
	return s.r.ColorProfile() != termenv.Ascii
}

func (s *Styled) SetColor(spec ColorSpec) error {
	if spec.IsNone() {
		return s.Reset()
	}
	s.style = lipglossStyle(s.r, spec)
	s.set = true
	return nil
}

func (s *Styled) Reset() error {
	s.style = s.r.NewStyle()
	s.set = false
	return nil
}

// String returns the rendered output.
func (s *Styled) String() string {
	return s.b.String()
}

func lipglossStyle(r *lipgloss.Renderer, spec ColorSpec) lipgloss.Style {
	st := r.NewStyle().
		Bold(spec.Bold).
		Italic(spec.Italic).
		Underline(spec.Underline).
		Faint(spec.Dimmed)
	if spec.Fg.IsSet() {
		st = st.Foreground(lipglossColor(spec.Fg, spec.Intense))
	}
	if spec.Bg.IsSet() {
		st = st.Background(lipglossColor(spec.Bg, spec.Intense))
	}
	return st
}

// lipglossColor converts c to a lipgloss ANSI color number; the bright
// variants of the named colors are numbers 8 through 15.
func lipglossColor(c Color, intense bool) lipgloss.Color {
	if n, ok := c.Named(); ok {
		if intense {
			n += 8
		}
		return lipgloss.Color(strconv.Itoa(int(n)))
	}
	n, _ := c.Index()
	return lipgloss.Color(strconv.Itoa(int(n)))
}

// Package term configures how diagnostics are rendered to a terminal: the
// verbosity and context sizes, the glyphs that draw snippet frames, and the
// colors used for each severity and label role.
package term

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// Config configures how a diagnostic is rendered.
// It is a plain value; copy it and override fields to customize.
type Config struct {
	// DisplayStyle is the level of detail to render.
	// Defaults to Rich.
	DisplayStyle DisplayStyle
	// TabWidth is the column width of a tab character.
	// Defaults to 4.
	TabWidth int
	// Chars are the glyphs used to draw snippets.
	// Defaults to BoxDrawingChars().
	Chars Chars
	// StartContextLines is the minimum number of lines shown after the line
	// on which a multi-line label begins.
	// Defaults to 3.
	StartContextLines int
	// EndContextLines is the minimum number of lines shown before the line
	// on which a multi-line label ends.
	// Defaults to 1.
	EndContextLines int
	// BeforeLabelLines is the minimum number of lines shown before a label.
	// Defaults to 0.
	BeforeLabelLines int
	// AfterLabelLines is the minimum number of lines shown after a label.
	// Defaults to 0.
	AfterLabelLines int
}

// DefaultConfig returns the default rendering configuration.
func DefaultConfig() Config {
	return Config{
		DisplayStyle:      Rich,
		TabWidth:          4,
		Chars:             DefaultChars(),
		StartContextLines: 3,
		EndContextLines:   1,
		BeforeLabelLines:  0,
		AfterLabelLines:   0,
	}
}

// DisplayStyle is the level of detail a diagnostic is rendered with.
type DisplayStyle int

const (
	// Rich renders the header, source snippets with labels, and notes:
	//
	//	error[E0001]: unexpected type in `+` application
	//	  ┌─ test:2:9
	//	  │
	//	2 │ (+ test "")
	//	  │         ^^ expected `Int` but found `String`
	//	  │
	//	  = expected type `Int`
	//	       found type `String`
	Rich DisplayStyle = iota
	// Medium renders the location, header and notes without snippets:
	//
	//	test:2:9: error[E0001]: unexpected type in `+` application
	//	= expected type `Int`
	//	     found type `String`
	Medium
	// Short renders the location and header only:
	//
	//	test:2:9: error[E0001]: unexpected type in `+` application
	Short
)

var displayStyleNames = [...]string{"rich", "medium", "short"}

func (d DisplayStyle) String() string {
	if d >= 0 && int(d) < len(displayStyleNames) {
		return displayStyleNames[d]
	}
	return "unknown"
}

// ParseDisplayStyle parses the names produced by DisplayStyle.String.
func ParseDisplayStyle(s string) (DisplayStyle, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range displayStyleNames {
		if s == name {
			return DisplayStyle(i), nil
		}
	}
	return 0, errors.Errorf("unknown display style %q", s)
}

package userconfig

import (
	"fortio.org/safecast"
	"github.com/cockroachdb/errors"

	"codespan.dev/pkg/term"
	"codespan.dev/pkg/termcolor"
)

// TermConfig returns the rendering configuration described by the settings.
func (c *Config) TermConfig() (term.Config, error) {
	style, err := term.ParseDisplayStyle(c.DisplayStyle)
	if err != nil {
		return term.Config{}, err
	}
	chars, err := term.ParseCharsName(c.Chars)
	if err != nil {
		return term.Config{}, err
	}

	cfg := term.Config{DisplayStyle: style, Chars: chars}
	for _, f := range []struct {
		key string
		src uint
		dst *int
	}{
		{"display.tab_width", c.TabWidth, &cfg.TabWidth},
		{"context.start_lines", c.StartContextLines, &cfg.StartContextLines},
		{"context.end_lines", c.EndContextLines, &cfg.EndContextLines},
		{"context.before_label_lines", c.BeforeLabelLines, &cfg.BeforeLabelLines},
		{"context.after_label_lines", c.AfterLabelLines, &cfg.AfterLabelLines},
	} {
		n, err := safecast.Conv[int](f.src)
		if err != nil {
			return term.Config{}, errors.Wrapf(err, "invalid value for %s", f.key)
		}
		*f.dst = n
	}
	return cfg, nil
}

// Styles returns the palette for the configured accent color.
func (c *Config) Styles() (term.Styles, error) {
	if c.Accent == "" {
		return term.DefaultStyles(), nil
	}
	accent, err := termcolor.ParseColor(c.Accent)
	if err != nil {
		return term.Styles{}, errors.Wrap(err, "invalid value for color.accent")
	}
	return term.StylesWithAccent(accent), nil
}

// Color returns the configured color choice.
func (c *Config) Color() (termcolor.ColorChoice, error) {
	return termcolor.ParseColorChoice(c.ColorChoice)
}

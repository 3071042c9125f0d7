package termcolor

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// ColorSpec is an abstract color and decoration description.
// ColorSpec values are comparable; two specs are the same style iff they are ==.
type ColorSpec struct {
	Fg Color
	Bg Color

	Bold      bool
	Intense   bool
	Underline bool
	Italic    bool
	Dimmed    bool
}

// IsNone reports whether the spec applies no style at all.
func (s ColorSpec) IsNone() bool {
	return s == ColorSpec{}
}

// String renders the spec as space separated terms, for example
// "fg:red bold intense". The empty spec renders as "none".
func (s ColorSpec) String() string {
	if s.IsNone() {
		return "none"
	}
	var terms []string
	if s.Fg.IsSet() {
		terms = append(terms, "fg:"+s.Fg.String())
	}
	if s.Bg.IsSet() {
		terms = append(terms, "bg:"+s.Bg.String())
	}
	for _, f := range specFlags {
		if *f.field(&s) {
			terms = append(terms, f.name)
		}
	}
	return strings.Join(terms, " ")
}

type specFlag struct {
	name  string
	field func(*ColorSpec) *bool
}

var specFlags = [...]specFlag{
	{"bold", func(s *ColorSpec) *bool { return &s.Bold }},
	{"intense", func(s *ColorSpec) *bool { return &s.Intense }},
	{"underline", func(s *ColorSpec) *bool { return &s.Underline }},
	{"italic", func(s *ColorSpec) *bool { return &s.Italic }},
	{"dimmed", func(s *ColorSpec) *bool { return &s.Dimmed }},
}

// ParseColorSpec parses the format produced by ColorSpec.String.
func ParseColorSpec(str string) (ColorSpec, error) {
	var spec ColorSpec
	terms := strings.Fields(str)
	if len(terms) == 1 && terms[0] == "none" {
		return spec, nil
	}

termLoop:
	for _, term := range terms {
		if key, val, ok := strings.Cut(term, ":"); ok {
			c, err := ParseColor(val)
			if err != nil {
				return ColorSpec{}, errors.Wrapf(err, "invalid term %q", term)
			}
			switch key {
			case "fg":
				spec.Fg = c
			case "bg":
				spec.Bg = c
			default:
				return ColorSpec{}, errors.Errorf("invalid term %q: unknown key %q", term, key)
			}
			continue
		}

		for _, f := range specFlags {
			if term == f.name {
				*f.field(&spec) = true
				continue termLoop
			}
		}
		return ColorSpec{}, errors.Errorf("invalid term %q", term)
	}
	return spec, nil
}

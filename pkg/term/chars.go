package term

import "github.com/cockroachdb/errors"

// Chars are the characters used when rendering a diagnostic.
//
// Use ASCIIChars for terminals whose font does not render box drawing
// characters well.
type Chars struct {
	// SnippetStart opens a snippet, before the file location.
	// "┌─", or "-->" in ASCII.
	SnippetStart string
	// SourceBorderLeft is the left border of the source.
	// '│', or '|' in ASCII.
	SourceBorderLeft rune
	// SourceBorderLeftBreak marks skipped source lines in the left border.
	// '·', or '.' in ASCII.
	SourceBorderLeftBreak rune

	// NoteBullet introduces a note. '=' in both sets.
	NoteBullet rune

	// SinglePrimaryCaret underlines a single-line primary label. '^'.
	SinglePrimaryCaret rune
	// SingleSecondaryCaret underlines a single-line secondary label. '-'.
	SingleSecondaryCaret rune

	// MultiPrimaryCaretStart marks the start of a multi-line primary label. '^'.
	MultiPrimaryCaretStart rune
	// MultiPrimaryCaretEnd marks the end of a multi-line primary label. '^'.
	MultiPrimaryCaretEnd rune
	// MultiSecondaryCaretStart marks the start of a multi-line secondary label. '\''.
	MultiSecondaryCaretStart rune
	// MultiSecondaryCaretEnd marks the end of a multi-line secondary label. '\''.
	MultiSecondaryCaretEnd rune
	// MultiTopLeft is the top-left corner of a multi-line label.
	// '╭', or '/' in ASCII.
	MultiTopLeft rune
	// MultiTop is the top of a multi-line label.
	// '─', or '-' in ASCII.
	MultiTop rune
	// MultiBottomLeft is the bottom-left corner of a multi-line label.
	// '╰', or '\\' in ASCII.
	MultiBottomLeft rune
	// MultiBottom is the bottom of a multi-line label.
	// '─', or '-' in ASCII.
	MultiBottom rune
	// MultiLeft is the left side of a multi-line label.
	// '│', or '|' in ASCII.
	MultiLeft rune

	// PointerLeft is the left side of a pointer underneath a caret.
	// '│', or '|' in ASCII.
	PointerLeft rune
}

// DefaultChars returns BoxDrawingChars.
func DefaultChars() Chars {
	return BoxDrawingChars()
}

// BoxDrawingChars returns a character set using Unicode box drawing characters.
func BoxDrawingChars() Chars {
	return Chars{
		SnippetStart:          "┌─",
		SourceBorderLeft:      '│',
		SourceBorderLeftBreak: '·',

		NoteBullet: '=',

		SinglePrimaryCaret:   '^',
		SingleSecondaryCaret: '-',

		MultiPrimaryCaretStart:   '^',
		MultiPrimaryCaretEnd:     '^',
		MultiSecondaryCaretStart: '\'',
		MultiSecondaryCaretEnd:   '\'',
		MultiTopLeft:             '╭',
		MultiTop:                 '─',
		MultiBottomLeft:          '╰',
		MultiBottom:              '─',
		MultiLeft:                '│',

		PointerLeft: '│',
	}
}

// ASCIIChars returns a character set using only ASCII characters,
// producing output similar to rustc's.
func ASCIIChars() Chars {
	return Chars{
		SnippetStart:          "-->",
		SourceBorderLeft:      '|',
		SourceBorderLeftBreak: '.',

		NoteBullet: '=',

		SinglePrimaryCaret:   '^',
		SingleSecondaryCaret: '-',

		MultiPrimaryCaretStart:   '^',
		MultiPrimaryCaretEnd:     '^',
		MultiSecondaryCaretStart: '\'',
		MultiSecondaryCaretEnd:   '\'',
		MultiTopLeft:             '/',
		MultiTop:                 '-',
		MultiBottomLeft:          '\\',
		MultiBottom:              '-',
		MultiLeft:                '|',

		PointerLeft: '|',
	}
}

// Names of the two character sets, as used in settings files and flags.
const (
	BoxDrawingName = "box-drawing"
	ASCIIName      = "ascii"
)

// ParseCharsName returns the character set with the given name.
func ParseCharsName(name string) (Chars, error) {
	switch name {
	case BoxDrawingName:
		return BoxDrawingChars(), nil
	case ASCIIName:
		return ASCIIChars(), nil
	}
	return Chars{}, errors.Errorf("unknown character set %q (expected %s or %s)", name, BoxDrawingName, ASCIIName)
}

// Name reports the name of the character set c is equal to, or "custom".
func (c Chars) Name() string {
	switch c {
	case BoxDrawingChars():
		return BoxDrawingName
	case ASCIIChars():
		return ASCIIName
	}
	return "custom"
}

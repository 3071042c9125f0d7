package term

import (
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/google/go-cmp/cmp"
)

func TestDefaultCharsIsBoxDrawing(t *testing.T) {
	if diff := cmp.Diff(BoxDrawingChars(), DefaultChars()); diff != "" {
		t.Fatalf("DefaultChars() mismatch (-want +got):\n%s", diff)
	}
}

func TestASCIIChars(t *testing.T) {
	c := qt.New(t)
	box, ascii := BoxDrawingChars(), ASCIIChars()

	c.Assert(ascii.SnippetStart, qt.Not(qt.Equals), box.SnippetStart)
	for _, pair := range [][2]rune{
		{ascii.MultiTopLeft, box.MultiTopLeft},
		{ascii.MultiTop, box.MultiTop},
		{ascii.MultiBottomLeft, box.MultiBottomLeft},
		{ascii.MultiBottom, box.MultiBottom},
		{ascii.MultiLeft, box.MultiLeft},
	} {
		c.Assert(pair[0], qt.Not(qt.Equals), pair[1])
	}

	c.Assert(ascii.NoteBullet, qt.Equals, '=')
	c.Assert(box.NoteBullet, qt.Equals, '=')
	c.Assert(ascii.SinglePrimaryCaret, qt.Equals, '^')
	c.Assert(box.SinglePrimaryCaret, qt.Equals, '^')
	c.Assert(ascii.SingleSecondaryCaret, qt.Equals, '-')
	c.Assert(box.SingleSecondaryCaret, qt.Equals, '-')

	for _, r := range []rune{
		ascii.SourceBorderLeft, ascii.SourceBorderLeftBreak, ascii.NoteBullet,
		ascii.SinglePrimaryCaret, ascii.SingleSecondaryCaret,
		ascii.MultiPrimaryCaretStart, ascii.MultiPrimaryCaretEnd,
		ascii.MultiSecondaryCaretStart, ascii.MultiSecondaryCaretEnd,
		ascii.MultiTopLeft, ascii.MultiTop, ascii.MultiBottomLeft, ascii.MultiBottom,
		ascii.MultiLeft, ascii.PointerLeft,
	} {
		c.Assert(r < 0x80, qt.IsTrue, qt.Commentf("rune %q is not ASCII", r))
	}
	c.Assert(ascii.SnippetStart, qt.Equals, "-->")
}

func TestCharsFieldsAreSet(t *testing.T) {
	c := qt.New(t)
	for _, chars := range []Chars{BoxDrawingChars(), ASCIIChars()} {
		c.Assert(chars.SnippetStart, qt.Not(qt.Equals), "")
		for _, r := range []rune{
			chars.SourceBorderLeft, chars.SourceBorderLeftBreak, chars.NoteBullet,
			chars.SinglePrimaryCaret, chars.SingleSecondaryCaret,
			chars.MultiPrimaryCaretStart, chars.MultiPrimaryCaretEnd,
			chars.MultiSecondaryCaretStart, chars.MultiSecondaryCaretEnd,
			chars.MultiTopLeft, chars.MultiTop, chars.MultiBottomLeft, chars.MultiBottom,
			chars.MultiLeft, chars.PointerLeft,
		} {
			c.Assert(r, qt.Not(qt.Equals), rune(0))
		}
	}
}

func TestParseCharsName(t *testing.T) {
	c := qt.New(t)

	box, err := ParseCharsName(BoxDrawingName)
	c.Assert(err, qt.IsNil)
	c.Assert(box, qt.Equals, BoxDrawingChars())
	c.Assert(box.Name(), qt.Equals, BoxDrawingName)

	ascii, err := ParseCharsName(ASCIIName)
	c.Assert(err, qt.IsNil)
	c.Assert(ascii, qt.Equals, ASCIIChars())

	_, err = ParseCharsName("emoji")
	c.Assert(err, qt.ErrorMatches, `unknown character set "emoji" .*`)

	custom := ascii
	custom.NoteBullet = '*'
	c.Assert(custom.Name(), qt.Equals, "custom")
}

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"codespan.dev/cli/cmd/codespan/cmdutil"
	"codespan.dev/cli/cmd/codespan/root"
	"codespan.dev/pkg/term"
)

var charsCmd = &cobra.Command{
	Use:   "chars",
	Short: "Show the characters of both character sets",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		_, out := mustSettings()
		if err := writeChars(out, cmdutil.TerminalWidth(os.Stdout)); err != nil {
			cmdutil.Fatal(err)
		}
	},
}

func init() {
	root.Cmd.AddCommand(charsCmd)
}

// widthCond measures box drawing characters as one column wide,
// whatever the locale.
var widthCond = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	return c
}()

type charRole struct {
	name  string
	glyph func(c term.Chars) string
}

func runeGlyph(f func(c term.Chars) rune) func(c term.Chars) string {
	return func(c term.Chars) string { return string(f(c)) }
}

var charRoles = []charRole{
	{"snippet_start", func(c term.Chars) string { return c.SnippetStart }},
	{"source_border_left", runeGlyph(func(c term.Chars) rune { return c.SourceBorderLeft })},
	{"source_border_left_break", runeGlyph(func(c term.Chars) rune { return c.SourceBorderLeftBreak })},
	{"note_bullet", runeGlyph(func(c term.Chars) rune { return c.NoteBullet })},
	{"single_primary_caret", runeGlyph(func(c term.Chars) rune { return c.SinglePrimaryCaret })},
	{"single_secondary_caret", runeGlyph(func(c term.Chars) rune { return c.SingleSecondaryCaret })},
	{"multi_primary_caret_start", runeGlyph(func(c term.Chars) rune { return c.MultiPrimaryCaretStart })},
	{"multi_primary_caret_end", runeGlyph(func(c term.Chars) rune { return c.MultiPrimaryCaretEnd })},
	{"multi_secondary_caret_start", runeGlyph(func(c term.Chars) rune { return c.MultiSecondaryCaretStart })},
	{"multi_secondary_caret_end", runeGlyph(func(c term.Chars) rune { return c.MultiSecondaryCaretEnd })},
	{"multi_top_left", runeGlyph(func(c term.Chars) rune { return c.MultiTopLeft })},
	{"multi_top", runeGlyph(func(c term.Chars) rune { return c.MultiTop })},
	{"multi_bottom_left", runeGlyph(func(c term.Chars) rune { return c.MultiBottomLeft })},
	{"multi_bottom", runeGlyph(func(c term.Chars) rune { return c.MultiBottom })},
	{"multi_left", runeGlyph(func(c term.Chars) rune { return c.MultiLeft })},
	{"pointer_left", runeGlyph(func(c term.Chars) rune { return c.PointerLeft })},
}

var charSets = []struct {
	name  string
	chars term.Chars
}{
	{term.BoxDrawingName, term.BoxDrawingChars()},
	{term.ASCIIName, term.ASCIIChars()},
}

// writeChars writes a table of every character role with one column per
// character set. If the table is wider than width, and width is not 0,
// the sets are listed one after the other instead.
func writeChars(w io.Writer, width int) error {
	nameWidth := 0
	for _, role := range charRoles {
		nameWidth = max(nameWidth, widthCond.StringWidth(role.name))
	}
	colWidths := make([]int, len(charSets))
	for i, set := range charSets {
		colWidths[i] = widthCond.StringWidth(set.name)
		for _, role := range charRoles {
			colWidths[i] = max(colWidths[i], widthCond.StringWidth(role.glyph(set.chars)))
		}
	}

	tableWidth := nameWidth
	for _, cw := range colWidths {
		tableWidth += 2 + cw
	}
	if width > 0 && tableWidth > width {
		return writeCharsStacked(w, nameWidth)
	}

	row := func(name string, cells func(i int) string) error {
		line := widthCond.FillRight(name, nameWidth)
		for i := range charSets {
			line += "  "
			if i < len(charSets)-1 {
				line += widthCond.FillRight(cells(i), colWidths[i])
			} else {
				line += cells(i)
			}
		}
		_, err := fmt.Fprintln(w, line)
		return err
	}

	if err := row("role", func(i int) string { return charSets[i].name }); err != nil {
		return err
	}
	for _, role := range charRoles {
		if err := row(role.name, func(i int) string { return role.glyph(charSets[i].chars) }); err != nil {
			return err
		}
	}
	return nil
}

func writeCharsStacked(w io.Writer, nameWidth int) error {
	for i, set := range charSets {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, set.name); err != nil {
			return err
		}
		for _, role := range charRoles {
			if _, err := fmt.Fprintf(w, "  %s  %s\n", widthCond.FillRight(role.name, nameWidth), role.glyph(set.chars)); err != nil {
				return err
			}
		}
	}
	return nil
}

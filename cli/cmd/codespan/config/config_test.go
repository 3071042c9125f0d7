package config

import (
	"bytes"
	"testing"

	qt "github.com/frankban/quicktest"

	"codespan.dev/internal/userconfig"
)

func TestShowKey(t *testing.T) {
	c := qt.New(t)
	cfg := userconfig.Default()
	cfg.DisplayStyle = "medium"

	var buf bytes.Buffer
	c.Assert(show(&buf, cfg, []string{"display.style"}), qt.IsNil)
	c.Assert(buf.String(), qt.Equals, "medium\n")

	buf.Reset()
	c.Assert(show(&buf, cfg, []string{"display.tab_width"}), qt.IsNil)
	c.Assert(buf.String(), qt.Equals, "4\n")

	c.Assert(show(&buf, cfg, []string{"display.stlye"}), qt.ErrorMatches, `unknown key "display.stlye" \(did you mean "display.style"\?\)`)
	c.Assert(show(&buf, cfg, []string{"theme"}), qt.ErrorMatches, `unknown key "theme"`)
	c.Assert(show(&buf, cfg, nil), qt.ErrorIs, errNoKey)
}

func TestShowAll(t *testing.T) {
	c := qt.New(t)
	cfg := userconfig.Default()

	viewAllSettings = true
	c.Cleanup(func() { viewAllSettings = false })

	var buf bytes.Buffer
	c.Assert(show(&buf, cfg, nil), qt.IsNil)
	c.Assert(buf.String(), qt.Equals, cfg.Render())

	c.Assert(show(&buf, cfg, []string{"display.style"}), qt.ErrorMatches, "cannot specify a settings key .*")
}

func TestShowTOML(t *testing.T) {
	c := qt.New(t)
	cfg := userconfig.Default()
	cfg.Chars = "ascii"

	viewTOML = true
	c.Cleanup(func() { viewTOML = false })

	var buf bytes.Buffer
	c.Assert(show(&buf, cfg, nil), qt.IsNil)

	parsed, err := userconfig.Parse(buf.Bytes())
	c.Assert(err, qt.IsNil)
	c.Assert(*parsed, qt.Equals, *cfg)
}

func TestLongDocs(t *testing.T) {
	c := qt.New(t)
	c.Assert(configCmd.Long, qt.Contains, "display.style (string: rich, medium, or short; default rich)")
	c.Assert(configCmd.Long, qt.Contains, "`codespan config <key>`")
}

package diagnostic

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestParseSeverity(t *testing.T) {
	c := qt.New(t)
	for _, sev := range Severities {
		got, err := ParseSeverity(sev.String())
		c.Assert(err, qt.IsNil)
		c.Assert(got, qt.Equals, sev)
	}

	got, err := ParseSeverity("WARNING")
	c.Assert(err, qt.IsNil)
	c.Assert(got, qt.Equals, Warning)

	_, err = ParseSeverity("fatal")
	c.Assert(err, qt.ErrorMatches, `unknown severity "fatal"`)
}

func TestStrings(t *testing.T) {
	c := qt.New(t)
	c.Assert(Severity(42).String(), qt.Equals, "unknown")
	c.Assert(Primary.String(), qt.Equals, "primary")
	c.Assert(Secondary.String(), qt.Equals, "secondary")
	c.Assert(LabelStyle(7).String(), qt.Equals, "unknown")
}

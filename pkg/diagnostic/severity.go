// Package diagnostic holds the lookup keys the style layer is indexed by.
// The full diagnostic model (messages, labels, notes) lives with the renderer.
package diagnostic

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// Severity is the criticality level of a diagnostic, ordered from most to
// least severe.
type Severity int

const (
	// Bug is an unexpected failure in the tool itself.
	Bug Severity = iota
	// Error is a problem that prevents a successful result.
	Error
	// Warning is a problem that does not prevent a result.
	Warning
	// Note is additional information.
	Note
	// Help is a suggestion for how to fix the problem.
	Help
)

// Severities lists every severity, most severe first.
var Severities = [...]Severity{Bug, Error, Warning, Note, Help}

func (s Severity) String() string {
	switch s {
	case Bug:
		return "bug"
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Note:
		return "note"
	case Help:
		return "help"
	default:
		return "unknown"
	}
}

// ParseSeverity parses the names produced by Severity.String.
func ParseSeverity(s string) (Severity, error) {
	for _, sev := range Severities {
		if strings.EqualFold(s, sev.String()) {
			return sev, nil
		}
	}
	return 0, errors.Errorf("unknown severity %q", s)
}

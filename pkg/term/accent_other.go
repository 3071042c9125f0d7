//go:build !windows

package term

import "codespan.dev/pkg/termcolor"

// DefaultAccent is the accent color of DefaultStyles.
const DefaultAccent = termcolor.Blue

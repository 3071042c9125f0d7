//go:build windows

package term

import "codespan.dev/pkg/termcolor"

// DefaultAccent is the accent color of DefaultStyles.
// Blue is hard to read on the standard Windows console background.
const DefaultAccent = termcolor.Cyan

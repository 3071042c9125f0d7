package term

import "sync"

var globalStyles = sync.OnceValue(func() *Styles {
	s := DefaultStyles()
	return &s
})

// GlobalStyles returns the process-wide default styles, built on first use.
// The returned value is shared and must not be modified.
func GlobalStyles() *Styles {
	return globalStyles()
}

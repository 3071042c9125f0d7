package diagnostic

// LabelStyle tags an annotated source span.
type LabelStyle int

const (
	// Primary labels point at the main cause of the diagnostic.
	Primary LabelStyle = iota
	// Secondary labels point at supporting context.
	Secondary
)

// LabelStyles lists both label styles.
var LabelStyles = [...]LabelStyle{Primary, Secondary}

func (l LabelStyle) String() string {
	switch l {
	case Primary:
		return "primary"
	case Secondary:
		return "secondary"
	default:
		return "unknown"
	}
}

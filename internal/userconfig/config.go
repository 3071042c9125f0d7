package userconfig

// Config describes the settings the codespan CLI reads from its settings files.
type Config struct {
	// Level of detail diagnostics are rendered with.
	// "rich" shows source snippets, "medium" shows headers and notes,
	// "short" shows headers only.
	DisplayStyle string `koanf:"display.style" oneof:"rich,medium,short" default:"rich"`

	// Column width of a tab character in source snippets.
	TabWidth uint `koanf:"display.tab_width" default:"4"`

	// Characters used to draw source snippets. Use "ascii" for terminals
	// whose font lacks box drawing characters.
	Chars string `koanf:"display.chars" oneof:"box-drawing,ascii" default:"box-drawing"`

	// Minimum number of lines shown after the line on which a multi-line label begins.
	StartContextLines uint `koanf:"context.start_lines" default:"3"`

	// Minimum number of lines shown before the line on which a multi-line label ends.
	EndContextLines uint `koanf:"context.end_lines" default:"1"`

	// Minimum number of lines shown before a label.
	BeforeLabelLines uint `koanf:"context.before_label_lines" default:"0"`

	// Minimum number of lines shown after a label.
	AfterLabelLines uint `koanf:"context.after_label_lines" default:"0"`

	// When to color output. "auto" colors output to terminals unless NO_COLOR is set.
	ColorChoice string `koanf:"color.choice" oneof:"auto,always,always-ansi,never" default:"auto"`

	// Color of line numbers, source borders, note bullets and secondary labels,
	// as a color name or a 256-color palette index. Empty selects the platform default.
	Accent string `koanf:"color.accent" default:""`
}

package format

// DefaultIndentWidth is the number of spaces per nesting level when no
// width is configured.
const DefaultIndentWidth = 4

// Options configures rendering.
type Options struct {
	// IndentWidth is the number of spaces per depth level. Values <= 0 fall
	// back to DefaultIndentWidth.
	IndentWidth int
}

func (o Options) withDefaults() Options {
	if o.IndentWidth <= 0 {
		o.IndentWidth = DefaultIndentWidth
	}
	return o
}

// Package goldmark_config holds Goldmark related configuration.
package goldmark_config

// Config configures Goldmark.
type Config struct {
	Renderer   Renderer
	Parser     Parser
	Extensions Extensions
}

type Renderer struct {
	// Whether softline breaks should be rendered as '<br>'
	HardWraps bool

	// Allow raw HTML etc.
	Unsafe bool
}

type Parser struct {
	// Enables auto generated heading ids.
	AutoHeadingID bool
}

type Extensions struct {
	Typographer    bool
	Footnote       bool
	DefinitionList bool

	// GitHub flavored markdown
	Table         bool
	Strikethrough bool
	Linkify       bool
	TaskList      bool
}

// Default holds the default Goldmark configuration: plain CommonMark
// rendering with raw HTML passed through.
var Default = Config{
	Extensions: Extensions{},
	Renderer: Renderer{
		Unsafe: true,
	},
	Parser: Parser{
		AutoHeadingID: false,
	},
}

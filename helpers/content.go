package helpers

import (
	"strings"

	"github.com/sunwei/mdsite/config"
	"github.com/sunwei/mdsite/markup"
)

// NewContentSpec returns a ContentSpec initialized
// with the appropriate fields from the given config.Provider.
func NewContentSpec(cfg config.Provider) (*ContentSpec, error) {
	converterProvider, err := markup.NewConverterProvider(cfg)
	if err != nil {
		return nil, err
	}

	return &ContentSpec{
		Converters: converterProvider,
	}, nil
}

// ContentSpec provides functionality to render markdown content.
type ContentSpec struct {
	Converters markup.ConverterProvider
}

// ResolveMarkup normalizes a markup name to the registered converter name.
// The markdown aliases resolve through the configured default handler.
func (c *ContentSpec) ResolveMarkup(in string) string {
	in = strings.ToLower(in)
	switch in {
	case "md", "markdown", "mdown":
		in = c.Converters.GetMarkupConfig().DefaultMarkdownHandler
	}
	if conv := c.Converters.Get(in); conv != nil {
		return conv.Name()
	}
	return ""
}

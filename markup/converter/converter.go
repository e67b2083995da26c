package converter

import (
	"github.com/sunwei/mdsite/markup/markup_config"
)

// Converter wraps the Convert method that converts some markup into
// another format, e.g. Markdown to HTML.
type Converter interface {
	Convert(ctx RenderContext) (Result, error)
}

// RenderContext holds contextual information about the content to render.
type RenderContext struct {
	// Src is the content to render.
	Src []byte
}

// Result represents the minimum returned from Convert.
type Result interface {
	// Bytes is the rendered HTML body.
	Bytes() []byte

	// Title is the literal text of the document's first top-level level-1
	// heading; empty when no such heading qualifies.
	Title() string
}

// Provider creates converters.
type Provider interface {
	New(ctx DocumentContext) (Converter, error)
	Name() string
}

// DocumentContext holds contextual information about the document to convert.
type DocumentContext struct {
	// DocumentName is the document's path relative to the input root.
	DocumentName string

	// Filename is the absolute path to the file on disk.
	Filename string
}

// ProviderConfig configures a new Provider.
type ProviderConfig struct {
	MarkupConfig markup_config.Config
}

// ProviderProvider creates converter providers.
type ProviderProvider interface {
	New(cfg ProviderConfig) (Provider, error)
}

// NewProvider creates a new Provider with the given name.
func NewProvider(name string, create func(ctx DocumentContext) (Converter, error)) Provider {
	return newConverter{
		name:   name,
		create: create,
	}
}

type newConverter struct {
	name   string
	create func(ctx DocumentContext) (Converter, error)
}

func (n newConverter) New(ctx DocumentContext) (Converter, error) {
	return n.create(ctx)
}

func (n newConverter) Name() string {
	return n.name
}

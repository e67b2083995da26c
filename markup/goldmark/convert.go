// Package goldmark converts Markdown to HTML using Goldmark.
package goldmark

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"

	"github.com/sunwei/mdsite/log"
	"github.com/sunwei/mdsite/markup/converter"
)

// Provider is the package entry point.
var Provider converter.ProviderProvider = provide{}

type provide struct{}

func (p provide) New(cfg converter.ProviderConfig) (converter.Provider, error) {
	md := newMarkdown(cfg)

	return converter.NewProvider("goldmark", func(ctx converter.DocumentContext) (converter.Converter, error) {
		return &goldmarkConverter{
			ctx: ctx,
			cfg: cfg,
			md:  md,
		}, nil
	}), nil
}

type goldmarkConverter struct {
	md  goldmark.Markdown
	ctx converter.DocumentContext
	cfg converter.ProviderConfig
}

func newMarkdown(pcfg converter.ProviderConfig) goldmark.Markdown {
	mcfg := pcfg.MarkupConfig.Goldmark

	var (
		extensions      []goldmark.Extender
		parserOptions   []parser.Option
		rendererOptions []renderer.Option
	)

	if mcfg.Renderer.HardWraps {
		rendererOptions = append(rendererOptions, html.WithHardWraps())
	}
	if mcfg.Renderer.Unsafe {
		rendererOptions = append(rendererOptions, html.WithUnsafe())
	}

	if mcfg.Extensions.Table {
		extensions = append(extensions, extension.Table)
	}
	if mcfg.Extensions.Strikethrough {
		extensions = append(extensions, extension.Strikethrough)
	}
	if mcfg.Extensions.Linkify {
		extensions = append(extensions, extension.Linkify)
	}
	if mcfg.Extensions.TaskList {
		extensions = append(extensions, extension.TaskList)
	}
	if mcfg.Extensions.DefinitionList {
		extensions = append(extensions, extension.DefinitionList)
	}
	if mcfg.Extensions.Footnote {
		extensions = append(extensions, extension.Footnote)
	}
	if mcfg.Extensions.Typographer {
		extensions = append(extensions, extension.Typographer)
	}

	if mcfg.Parser.AutoHeadingID {
		parserOptions = append(parserOptions, parser.WithAutoHeadingID())
	}

	return goldmark.New(
		goldmark.WithExtensions(extensions...),
		goldmark.WithParserOptions(parserOptions...),
		goldmark.WithRendererOptions(rendererOptions...),
	)
}

type converterResult struct {
	content []byte
	title   string
}

func (r converterResult) Bytes() []byte { return r.content }
func (r converterResult) Title() string { return r.title }

func (c *goldmarkConverter) Convert(ctx converter.RenderContext) (converter.Result, error) {
	pctx := parser.NewContext()
	reader := text.NewReader(ctx.Src)

	doc := c.md.Parser().Parse(reader, parser.WithContext(pctx))

	title, status := extractTitle(doc, ctx.Src)
	switch status {
	case titleNotText:
		log.Warnf("convert %q: first level-1 heading does not start with plain text, title left empty", c.ctx.DocumentName)
	case titleMissing:
		log.Warnf("convert %q: no top-level level-1 heading, add one to give the page a title", c.ctx.DocumentName)
	}

	var buf bytes.Buffer
	if err := c.md.Renderer().Render(&buf, ctx.Src, doc); err != nil {
		return nil, fmt.Errorf("render %q: %w", c.ctx.DocumentName, err)
	}

	return converterResult{
		content: buf.Bytes(),
		title:   title,
	}, nil
}

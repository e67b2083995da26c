// Package markup registers the available markup converters.
package markup

import (
	"strings"

	"github.com/sunwei/mdsite/config"
	"github.com/sunwei/mdsite/markup/converter"
	"github.com/sunwei/mdsite/markup/goldmark"
	"github.com/sunwei/mdsite/markup/markup_config"
)

type ConverterProvider interface {
	Get(name string) converter.Provider
	GetMarkupConfig() markup_config.Config
}

func NewConverterProvider(cfg config.Provider) (ConverterProvider, error) {
	converters := make(map[string]converter.Provider)

	markupConfig, err := markup_config.Decode(cfg)
	if err != nil {
		return nil, err
	}

	cpc := converter.ProviderConfig{
		MarkupConfig: markupConfig,
	}

	defaultHandler := markupConfig.DefaultMarkdownHandler
	add := func(p converter.ProviderProvider, aliases ...string) error {
		c, err := p.New(cpc)
		if err != nil {
			return err
		}

		name := c.Name()
		aliases = append(aliases, name)

		if strings.EqualFold(name, defaultHandler) {
			aliases = append(aliases, "markdown", "md")
		}

		addConverter(converters, c, aliases...)
		return nil
	}

	if err := add(goldmark.Provider); err != nil {
		return nil, err
	}

	return &converterRegistry{
		config:     cpc,
		converters: converters,
	}, nil
}

func addConverter(m map[string]converter.Provider, c converter.Provider, aliases ...string) {
	for _, alias := range aliases {
		m[alias] = c
	}
}

type converterRegistry struct {
	// Maps name (md, markdown, goldmark) to a converter provider.
	// Note that this is also used for aliasing, so the same converter
	// may be registered multiple times.
	// All names are lower case.
	converters map[string]converter.Provider

	config converter.ProviderConfig
}

func (r *converterRegistry) Get(name string) converter.Provider {
	return r.converters[strings.ToLower(name)]
}

func (r *converterRegistry) GetMarkupConfig() markup_config.Config {
	return r.config.MarkupConfig
}

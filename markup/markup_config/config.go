package markup_config

import (
	"fmt"

	"github.com/mitchellh/mapstructure"

	"github.com/sunwei/mdsite/config"
	"github.com/sunwei/mdsite/markup/goldmark/goldmark_config"
)

type Config struct {
	// Default markdown handler for md/markdown extensions.
	// Default is "goldmark".
	DefaultMarkdownHandler string

	// Content renderer.
	Goldmark goldmark_config.Config
}

// Decode returns the markup config with any "markup" section of the site
// config applied on top of the defaults.
func Decode(cfg config.Provider) (Config, error) {
	conf := Default

	m := cfg.GetStringMap("markup")
	if m == nil {
		return conf, nil
	}

	if err := mapstructure.WeakDecode(m, &conf); err != nil {
		return conf, fmt.Errorf("decode markup config: %w", err)
	}

	return conf, nil
}

var Default = Config{
	DefaultMarkdownHandler: "goldmark",

	Goldmark: goldmark_config.Default,
}

package config

import (
	"fmt"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"

	"github.com/sunwei/mdsite/common/maps"
)

// SiteConfigFilename is the optional per-site config file, looked up in the
// input root.
const SiteConfigFilename = "config.toml"

// LoadSiteConfig builds the site configuration: defaults, overridden by the
// optional config.toml found in dir. The resolved input and output roots are
// set by the caller afterwards and always win.
func LoadSiteConfig(fs afero.Fs, dir string) (Provider, error) {
	cfg := New()
	applyConfigDefaults(cfg)

	filename := filepath.Join(dir, SiteConfigFilename)
	exists, err := afero.Exists(fs, filename)
	if err == nil && exists {
		m, err := fromFileToMap(fs, filename)
		if err != nil {
			return nil, fmt.Errorf("load site config: %w", err)
		}
		// Set overwrites keys of the same name, recursively.
		cfg.Set("", m)
	}

	return cfg, nil
}

// fromFileToMap returns the config file's values as a simple map.
func fromFileToMap(fs afero.Fs, filename string) (map[string]any, error) {
	data, err := afero.ReadFile(fs, filename)
	if err != nil {
		return nil, err
	}

	m := make(map[string]any)
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("unmarshal %q: %w", filename, err)
	}
	return m, nil
}

func applyConfigDefaults(cfg Provider) {
	defaultSettings := maps.Params{
		"inputroot":  ".",
		"outputroot": "out",
		"templates": maps.Params{
			"header": "header.html",
			"footer": "footer.html",
		},
		"assets": maps.Params{
			"manifest": "assets.txt",
		},
		"ignorefiles": []string{},
	}

	cfg.SetDefaults(defaultSettings)
}

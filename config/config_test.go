package config

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/sunwei/mdsite/common/maps"
)

func TestProviderNestedSetAndGet(t *testing.T) {
	cfg := New()

	cfg.Set("templates.header", "top.html")
	cfg.Set("Templates.Footer", "bottom.html")

	require.Equal(t, "top.html", cfg.GetString("templates.header"))
	require.Equal(t, "bottom.html", cfg.GetString("templates.footer"))
	require.True(t, cfg.IsSet("templates.header"))
	require.False(t, cfg.IsSet("templates.missing"))
}

func TestProviderSetDefaultsDoesNotOverride(t *testing.T) {
	cfg := New()
	cfg.Set("outputRoot", "/elsewhere")

	cfg.SetDefaults(maps.Params{
		"outputroot": "out",
		"inputroot":  ".",
	})

	require.Equal(t, "/elsewhere", cfg.GetString("outputRoot"))
	require.Equal(t, ".", cfg.GetString("inputRoot"))
}

func TestGetStringSlicePreserveString(t *testing.T) {
	cfg := New()

	cfg.Set("ignoreFiles", "drafts/*")
	require.Equal(t, []string{"drafts/*"}, GetStringSlicePreserveString(cfg, "ignoreFiles"))

	cfg.Set("ignoreFiles", []string{"a", "b"})
	require.Equal(t, []string{"a", "b"}, GetStringSlicePreserveString(cfg, "ignoreFiles"))

	require.Nil(t, GetStringSlicePreserveString(cfg, "unset"))
}

func TestLoadSiteConfigDefaults(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/in", 0777))

	cfg, err := LoadSiteConfig(fs, "/in")
	require.NoError(t, err)

	require.Equal(t, "header.html", cfg.GetString("templates.header"))
	require.Equal(t, "footer.html", cfg.GetString("templates.footer"))
	require.Equal(t, "assets.txt", cfg.GetString("assets.manifest"))
	require.Equal(t, "out", cfg.GetString("outputRoot"))
}

func TestLoadSiteConfigFileOverridesDefaults(t *testing.T) {
	fs := afero.NewMemMapFs()
	content := "[templates]\nheader = \"top.html\"\n\n[markup.goldmark.renderer]\nhardWraps = true\n"
	require.NoError(t, afero.WriteFile(fs, "/in/config.toml", []byte(content), 0666))

	cfg, err := LoadSiteConfig(fs, "/in")
	require.NoError(t, err)

	require.Equal(t, "top.html", cfg.GetString("templates.header"))
	// Untouched sibling keys keep their defaults.
	require.Equal(t, "footer.html", cfg.GetString("templates.footer"))
	require.True(t, cfg.GetBool("markup.goldmark.renderer.hardwraps"))
}

func TestLoadSiteConfigRejectsBadTOML(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/in/config.toml", []byte("not = [valid"), 0666))

	_, err := LoadSiteConfig(fs, "/in")
	require.Error(t, err)
}

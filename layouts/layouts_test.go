package layouts

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/sunwei/mdsite/config"
	"github.com/sunwei/mdsite/paths"
)

func newTestSpec(t *testing.T, fs afero.Fs, cfg config.Provider) *Spec {
	t.Helper()

	if cfg == nil {
		cfg = config.New()
	}

	s, err := NewSpec(fs, &paths.Paths{
		Fs:         fs,
		Cfg:        cfg,
		InputRoot:  "/in",
		OutputRoot: "/out",
	}, cfg)
	require.NoError(t, err)

	return s
}

func TestAssembleSubstitutesTitleInHeaderOnly(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/in/header.html", []byte("<title>{title}</title>"), 0666))
	require.NoError(t, afero.WriteFile(fs, "/in/footer.html", []byte(""), 0666))

	s := newTestSpec(t, fs, nil)

	got := s.Assemble("X", []byte("<p>Y</p>"))
	require.Equal(t, "<title>X</title><p>Y</p>", string(got))
}

func TestAssembleFooterGetsNoSubstitution(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/in/header.html", []byte("H|"), 0666))
	require.NoError(t, afero.WriteFile(fs, "/in/footer.html", []byte("|{title}"), 0666))

	s := newTestSpec(t, fs, nil)

	got := s.Assemble("X", []byte("B"))
	require.Equal(t, "H|B|{title}", string(got))
}

func TestMissingTemplatesFallBackToDefaults(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/in", 0777))

	s := newTestSpec(t, fs, nil)

	got := string(s.Assemble("My Page", []byte("<p>B</p>")))
	require.Contains(t, got, "<title>My Page</title>")
	require.Contains(t, got, "<p>B</p>")
	require.Contains(t, got, "</html>")
	require.NotContains(t, got, TitlePlaceholder)
}

func TestConfiguredTemplateNames(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/in/top.html", []byte("T:{title};"), 0666))
	require.NoError(t, afero.WriteFile(fs, "/in/bottom.html", []byte(";end"), 0666))

	cfg := config.New()
	cfg.Set("templates.header", "top.html")
	cfg.Set("templates.footer", "bottom.html")

	s := newTestSpec(t, fs, cfg)

	got := s.Assemble("A", []byte("B"))
	require.Equal(t, "T:A;B;end", string(got))
}

package assets

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/sunwei/mdsite/config"
	"github.com/sunwei/mdsite/paths"
)

func newTestCopier(t *testing.T, fs afero.Fs, cfg config.Provider) *Copier {
	t.Helper()

	if cfg == nil {
		cfg = config.New()
	}

	p := &paths.Paths{
		Fs:         fs,
		Cfg:        cfg,
		InputRoot:  "/in",
		OutputRoot: "/out",
	}
	publish := afero.NewBasePathFs(fs, "/out")

	return NewCopier(fs, publish, p, cfg)
}

func TestCopyTrimsEntriesAndSkipsLeadingBlanks(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/in/assets.txt", []byte("\n\n assets/logo.png \n"), 0666))
	require.NoError(t, afero.WriteFile(fs, "/in/assets/logo.png", []byte("png-bytes"), 0666))

	copied, skipped, err := newTestCopier(t, fs, nil).Copy()
	require.NoError(t, err)
	require.Equal(t, 1, copied)
	require.Equal(t, 0, skipped)

	got, err := afero.ReadFile(fs, "/out/assets/logo.png")
	require.NoError(t, err)
	require.Equal(t, "png-bytes", string(got))
}

func TestCopyMissingManifestMeansZeroAssets(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/in", 0777))

	copied, skipped, err := newTestCopier(t, fs, nil).Copy()
	require.NoError(t, err)
	require.Equal(t, 0, copied)
	require.Equal(t, 0, skipped)
}

func TestCopySkipsMissingEntriesAndContinues(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/in/assets.txt", []byte("missing.png\nreal.css\n\n"), 0666))
	require.NoError(t, afero.WriteFile(fs, "/in/real.css", []byte("body{}"), 0666))

	copied, skipped, err := newTestCopier(t, fs, nil).Copy()
	require.NoError(t, err)
	require.Equal(t, 1, copied)
	require.Equal(t, 1, skipped)

	ok, err := afero.Exists(fs, "/out/real.css")
	require.NoError(t, err)
	require.True(t, ok)
}

func TestCopyAbsoluteEntryOutsideInputRootFails(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/in/assets.txt", []byte("/elsewhere/f.css\n"), 0666))
	require.NoError(t, afero.WriteFile(fs, "/elsewhere/f.css", []byte("x"), 0666))

	_, _, err := newTestCopier(t, fs, nil).Copy()
	require.Error(t, err)
	require.Contains(t, err.Error(), "escapes the input root")
}

func TestCopyConfiguredManifestName(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/in/extra.list", []byte("a.txt\n"), 0666))
	require.NoError(t, afero.WriteFile(fs, "/in/a.txt", []byte("a"), 0666))

	cfg := config.New()
	cfg.Set("assets.manifest", "extra.list")

	copied, _, err := newTestCopier(t, fs, cfg).Copy()
	require.NoError(t, err)
	require.Equal(t, 1, copied)
}

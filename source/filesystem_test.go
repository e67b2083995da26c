package source

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/sunwei/mdsite/config"
	"github.com/sunwei/mdsite/paths"
)

func newTestSpec(t *testing.T, fs afero.Fs, inputRoot string, cfg config.Provider) *SourceSpec {
	t.Helper()

	if cfg == nil {
		cfg = config.New()
	}

	sp, err := NewSourceSpec(&paths.Paths{
		Fs:         fs,
		Cfg:        cfg,
		InputRoot:  inputRoot,
		OutputRoot: "/out",
	}, cfg, fs)
	require.NoError(t, err)

	return sp
}

func writeFile(t *testing.T, fs afero.Fs, name, content string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(fs, name, []byte(content), 0666))
}

func TestFilesFindsMarkdownRecursively(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/content/a.md", "# A")
	writeFile(t, fs, "/content/sub/b.md", "# B")
	writeFile(t, fs, "/content/notes.txt", "not markdown")
	writeFile(t, fs, "/content/sub/deep/image.png", "png")
	require.NoError(t, fs.MkdirAll("/content/empty", 0777))

	files, err := newTestSpec(t, fs, "/content", nil).NewFilesystem().Files()
	require.NoError(t, err)
	require.Len(t, files, 2)

	// Sorted path order.
	require.Equal(t, "/content/a.md", files[0].Filename())
	require.Equal(t, "sub/b.md", files[1].Path())
	require.Equal(t, "md", files[0].Ext())
	require.Equal(t, "b", files[1].BaseFileName())
}

func TestFilesOnNonexistentRootIsEmpty(t *testing.T) {
	fs := afero.NewMemMapFs()

	files, err := newTestSpec(t, fs, "/nope", nil).NewFilesystem().Files()
	require.NoError(t, err)
	require.Empty(t, files)
}

func TestFilesSkipsHiddenAndBackupFiles(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/content/page.md", "# Page")
	writeFile(t, fs, "/content/.hidden.md", "# Hidden")
	writeFile(t, fs, "/content/#editing.md", "# Editing")
	writeFile(t, fs, "/content/backup.md~", "# Backup")

	files, err := newTestSpec(t, fs, "/content", nil).NewFilesystem().Files()
	require.NoError(t, err)
	require.Len(t, files, 1)
	require.Equal(t, "page.md", files[0].LogicalName())
}

func TestFilesHonorsIgnorePatterns(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/content/keep.md", "# Keep")
	writeFile(t, fs, "/content/skip-this.md", "# Skip")
	writeFile(t, fs, "/content/drafts/wip.md", "# WIP")

	cfg := config.New()
	cfg.Set("ignoreFiles", []string{"skip-*", "drafts/*"})

	files, err := newTestSpec(t, fs, "/content", cfg).NewFilesystem().Files()
	require.NoError(t, err)
	require.Len(t, files, 1)
	require.Equal(t, "keep.md", files[0].Path())
}

func TestFilesScanRunsOnce(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/content/a.md", "# A")

	sfs := newTestSpec(t, fs, "/content", nil).NewFilesystem()

	first, err := sfs.Files()
	require.NoError(t, err)

	writeFile(t, fs, "/content/late.md", "# Late")

	second, err := sfs.Files()
	require.NoError(t, err)
	require.Equal(t, first, second)
}

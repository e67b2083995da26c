package publisher

import (
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func TestPublishCreatesParentDirectories(t *testing.T) {
	fs := afero.NewMemMapFs()
	p := NewDestinationPublisher(fs)

	err := p.Publish(Descriptor{
		Src:        strings.NewReader("<p>hi</p>"),
		TargetPath: "docs/deep/page.html",
	})
	require.NoError(t, err)

	got, err := afero.ReadFile(fs, "docs/deep/page.html")
	require.NoError(t, err)
	require.Equal(t, "<p>hi</p>", string(got))
}

func TestPublishTruncatesExistingFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "page.html", []byte("old content, longer"), 0666))

	p := NewDestinationPublisher(fs)
	err := p.Publish(Descriptor{
		Src:        strings.NewReader("new"),
		TargetPath: "page.html",
	})
	require.NoError(t, err)

	got, err := afero.ReadFile(fs, "page.html")
	require.NoError(t, err)
	require.Equal(t, "new", string(got))
}

func TestPublishRequiresTargetPath(t *testing.T) {
	p := NewDestinationPublisher(afero.NewMemMapFs())

	err := p.Publish(Descriptor{Src: strings.NewReader("x")})
	require.Error(t, err)
}

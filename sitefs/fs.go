// Package sitefs provides the file systems used by the site build.
package sitefs

import (
	"fmt"

	"github.com/spf13/afero"

	"github.com/sunwei/mdsite/log"
)

// Os points to the (real) Os filesystem.
var Os = &afero.OsFs{}

// Fs holds the core filesystems used by the build.
type Fs struct {
	// Source is the source file system.
	// Note that this will always be a "plain" Afero filesystem:
	// * afero.OsFs when running in production
	// * afero.MemMapFs for many of the tests.
	Source afero.Fs

	// PublishDir is where rendered pages and copied assets land.
	// It's mounted at the canonical output root.
	PublishDir afero.Fs
}

// New creates an Fs with source as both the source and destination
// filesystem, publishing into absPublishDir.
func New(source afero.Fs, absPublishDir string) (*Fs, error) {
	return newFs(source, source, absPublishDir)
}

func newFs(source, destination afero.Fs, absPublishDir string) (*Fs, error) {
	// Make sure the output root is ready to use.
	if err := source.MkdirAll(absPublishDir, 0777); err != nil {
		return nil, fmt.Errorf("create publish dir %q: %w", absPublishDir, err)
	}
	log.Process("newFs", "publish dir ready")

	pubFs := afero.NewBasePathFs(destination, absPublishDir)

	return &Fs{
		Source:     source,
		PublishDir: pubFs,
	}, nil
}

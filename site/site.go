// Package site drives the build: scan, convert, assemble, publish, assets.
package site

import (
	"fmt"

	"github.com/spf13/afero"

	"github.com/sunwei/mdsite/assets"
	"github.com/sunwei/mdsite/config"
	"github.com/sunwei/mdsite/helpers"
	"github.com/sunwei/mdsite/layouts"
	"github.com/sunwei/mdsite/paths"
	"github.com/sunwei/mdsite/publisher"
	"github.com/sunwei/mdsite/sitefs"
	"github.com/sunwei/mdsite/source"
)

// Site holds the wired collaborators of one build.
type Site struct {
	Cfg   config.Provider
	Fs    *sitefs.Fs
	Paths *paths.Paths

	ContentSpec *helpers.ContentSpec
	SourceSpec  *source.SourceSpec
	Layouts     *layouts.Spec
	Publisher   publisher.Publisher
	Assets      *assets.Copier
}

// New wires a Site from the given configuration and source filesystem.
// Everything that can fail here is a configuration-root-level problem, and
// the error aborts the run before any file is processed.
func New(cfg config.Provider, sourceFs afero.Fs) (*Site, error) {
	p, err := paths.New(sourceFs, cfg)
	if err != nil {
		return nil, fmt.Errorf("normalize configuration: %w", err)
	}

	fs, err := sitefs.New(sourceFs, p.OutputRoot)
	if err != nil {
		return nil, err
	}

	contentSpec, err := helpers.NewContentSpec(cfg)
	if err != nil {
		return nil, err
	}

	sourceSpec, err := source.NewSourceSpec(p, cfg, sourceFs)
	if err != nil {
		return nil, err
	}

	layoutSpec, err := layouts.NewSpec(sourceFs, p, cfg)
	if err != nil {
		return nil, err
	}

	return &Site{
		Cfg:         cfg,
		Fs:          fs,
		Paths:       p,
		ContentSpec: contentSpec,
		SourceSpec:  sourceSpec,
		Layouts:     layoutSpec,
		Publisher:   publisher.NewDestinationPublisher(fs.PublishDir),
		Assets:      assets.NewCopier(sourceFs, fs.PublishDir, p, cfg),
	}, nil
}

package source

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
	"github.com/spf13/afero"

	"github.com/sunwei/mdsite/config"
	"github.com/sunwei/mdsite/paths"
)

// SourceSpec abstracts source file creation and filtering.
type SourceSpec struct {
	SourceFs afero.Fs
	Paths    *paths.Paths

	ignore []glob.Glob
}

// NewSourceSpec initializes a SourceSpec from the given Paths and filesystem.
// The ignoreFiles config patterns are compiled once here.
func NewSourceSpec(p *paths.Paths, cfg config.Provider, fs afero.Fs) (*SourceSpec, error) {
	var ignore []glob.Glob
	for _, pattern := range config.GetStringSlicePreserveString(cfg, "ignorefiles") {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" {
			continue
		}
		g, err := glob.Compile(strings.ToLower(pattern), '/')
		if err != nil {
			return nil, fmt.Errorf("compile ignoreFiles pattern %q: %w", pattern, err)
		}
		ignore = append(ignore, g)
	}

	return &SourceSpec{
		SourceFs: fs,
		Paths:    p,
		ignore:   ignore,
	}, nil
}

// IgnoreFile returns whether a given file should be ignored.
func (s *SourceSpec) IgnoreFile(filename string) bool {
	if filename == "" {
		return true
	}

	base := filepath.Base(filename)

	if len(base) > 0 {
		first := base[0]
		last := base[len(base)-1]
		if first == '.' ||
			first == '#' ||
			last == '~' {
			return true
		}
	}

	if len(s.ignore) == 0 {
		return false
	}

	rel, err := s.Paths.RelSource(filename)
	if err != nil {
		return false
	}
	slashed := strings.ToLower(filepath.ToSlash(rel))
	lowerBase := strings.ToLower(base)
	for _, g := range s.ignore {
		if g.Match(slashed) || g.Match(lowerBase) {
			return true
		}
	}

	return false
}

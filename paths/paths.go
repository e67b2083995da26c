// Package paths decides where source files land in the output tree.
package paths

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/sunwei/mdsite/config"
	"github.com/sunwei/mdsite/helpers"
)

var FilePathSeparator = string(filepath.Separator)

// Paths holds the two roots of a build. Both are canonical (absolute and,
// on a real filesystem, symlink-resolved) from the moment New returns;
// everything downstream assumes fully resolved paths and never normalizes
// again.
type Paths struct {
	Fs  afero.Fs
	Cfg config.Provider

	InputRoot  string
	OutputRoot string
}

func New(fs afero.Fs, cfg config.Provider) (*Paths, error) {
	inputRoot := cfg.GetString("inputroot")
	if inputRoot == "" {
		inputRoot = "."
	}
	outputRoot := cfg.GetString("outputroot")
	if outputRoot == "" {
		return nil, fmt.Errorf("outputRoot not set")
	}

	in, err := filepath.Abs(filepath.Clean(inputRoot))
	if err != nil {
		return nil, fmt.Errorf("resolve input root %q: %w", inputRoot, err)
	}
	ok, err := helpers.DirExists(in, fs)
	if err != nil {
		return nil, fmt.Errorf("stat input root %q: %w", in, err)
	}
	if !ok {
		return nil, fmt.Errorf("input root %q does not exist or is not a directory", in)
	}
	in = Canonicalize(fs, in)

	out, err := filepath.Abs(filepath.Clean(outputRoot))
	if err != nil {
		return nil, fmt.Errorf("resolve output root %q: %w", outputRoot, err)
	}
	if err := fs.MkdirAll(out, 0777); err != nil {
		return nil, fmt.Errorf("create output root %q: %w", out, err)
	}
	out = Canonicalize(fs, out)

	return &Paths{
		Fs:         fs,
		Cfg:        cfg,
		InputRoot:  in,
		OutputRoot: out,
	}, nil
}

// RelSource returns source's path remainder below the input root. A source
// that is not a descendant of the input root means the roots themselves are
// misconfigured, and the returned error aborts the run.
func (p *Paths) RelSource(source string) (string, error) {
	rel, err := filepath.Rel(p.InputRoot, source)
	if err != nil {
		return "", fmt.Errorf("relate %q to input root %q: %w", source, p.InputRoot, err)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+FilePathSeparator) {
		return "", fmt.Errorf("source path %q escapes the input root %q", source, p.InputRoot)
	}
	return rel, nil
}

// PageTarget returns the output-root-relative path for a rendered page:
// the mirrored remainder with the extension forced to ".html".
func (p *Paths) PageTarget(source string) (string, error) {
	rel, err := p.RelSource(source)
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(rel, filepath.Ext(rel)) + ".html", nil
}

// AssetTarget returns the output-root-relative path for a copied asset:
// the mirrored remainder with the extension preserved.
func (p *Paths) AssetTarget(source string) (string, error) {
	return p.RelSource(source)
}

// PageDestination returns the absolute destination path for a rendered page.
func (p *Paths) PageDestination(source string) (string, error) {
	rel, err := p.PageTarget(source)
	if err != nil {
		return "", err
	}
	return filepath.Join(p.OutputRoot, rel), nil
}

// AssetDestination returns the absolute destination path for a copied asset.
func (p *Paths) AssetDestination(source string) (string, error) {
	rel, err := p.AssetTarget(source)
	if err != nil {
		return "", err
	}
	return filepath.Join(p.OutputRoot, rel), nil
}

// Canonicalize makes path absolute and, on the real filesystem, resolves
// symlinks. In-memory test filesystems have no symlinks to resolve.
func Canonicalize(fs afero.Fs, path string) string {
	abs, err := filepath.Abs(filepath.Clean(path))
	if err != nil {
		return filepath.Clean(path)
	}
	if _, isOs := fs.(*afero.OsFs); isOs {
		if resolved, err := filepath.EvalSymlinks(abs); err == nil {
			return resolved
		}
	}
	return abs
}

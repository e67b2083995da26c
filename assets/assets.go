// Package assets replicates manifest-listed files into the output tree.
package assets

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/sunwei/mdsite/config"
	"github.com/sunwei/mdsite/helpers"
	"github.com/sunwei/mdsite/log"
	"github.com/sunwei/mdsite/paths"
)

// Copier copies the files listed in the asset manifest to their mirrored
// destinations under the output root.
type Copier struct {
	sourceFs  afero.Fs
	publishFs afero.Fs
	paths     *paths.Paths

	// Manifest filename, relative to the input root.
	manifest string
}

func NewCopier(source, publish afero.Fs, p *paths.Paths, cfg config.Provider) *Copier {
	name := cfg.GetString("assets.manifest")
	if name == "" {
		name = "assets.txt"
	}

	return &Copier{
		sourceFs:  source,
		publishFs: publish,
		paths:     p,
		manifest:  name,
	}
}

// Copy reads the manifest and copies every listed file byte-for-byte to its
// mirrored destination. Relative manifest entries resolve against the input
// root, not the process working directory. A missing manifest means zero
// assets; missing entries and failed copies are warnings. The only error is
// an entry that does not map below the input root, which aborts the run.
func (c *Copier) Copy() (copied, skipped int, err error) {
	manifestPath := filepath.Join(c.paths.InputRoot, c.manifest)

	exists, statErr := afero.Exists(c.sourceFs, manifestPath)
	if statErr != nil || !exists {
		log.Process("assets", "no manifest found, nothing to copy")
		return 0, 0, nil
	}

	b, readErr := afero.ReadFile(c.sourceFs, manifestPath)
	if readErr != nil {
		log.Warnf("assets: read manifest %q: %v", manifestPath, readErr)
		return 0, 0, nil
	}

	lines := strings.Split(string(b), "\n")

	// Skip leading blank lines before the first entry.
	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}

	for _, line := range lines {
		entry := strings.TrimSpace(line)
		if entry == "" {
			continue
		}

		// Absolute entries are used as-is; relative entries resolve against
		// the input root and get canonicalized there and then.
		resolved := entry
		if !filepath.IsAbs(resolved) {
			resolved = paths.Canonicalize(c.sourceFs, filepath.Join(c.paths.InputRoot, resolved))
		}

		ok, statErr := afero.Exists(c.sourceFs, resolved)
		if statErr != nil || !ok {
			log.Warnf("assets: %q not found, skipping", entry)
			skipped++
			continue
		}

		target, terr := c.paths.AssetTarget(resolved)
		if terr != nil {
			return copied, skipped, terr
		}

		if cerr := c.copyFile(resolved, target); cerr != nil {
			log.Warnf("assets: copy %q: %v", entry, cerr)
			skipped++
			continue
		}
		copied++
	}

	return copied, skipped, nil
}

func (c *Copier) copyFile(source, target string) error {
	in, err := c.sourceFs.Open(source)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := helpers.OpenFileForWriting(c.publishFs, target)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, in)
	return err
}

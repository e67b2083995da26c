package source

import (
	"path/filepath"
	"strings"
	"sync"

	radix "github.com/armon/go-radix"
	"github.com/spf13/afero"

	"github.com/sunwei/mdsite/log"
	"github.com/sunwei/mdsite/paths"
)

// MarkdownExt is the extension (without dot) of the files the scan collects.
const MarkdownExt = "md"

// Filesystem represents a source filesystem.
type Filesystem struct {
	files        []File
	filesInit    sync.Once
	filesInitErr error

	*SourceSpec
}

// NewFilesystem returns a Filesystem rooted at the spec's input root.
func (sp *SourceSpec) NewFilesystem() *Filesystem {
	return &Filesystem{SourceSpec: sp}
}

// Files returns the markdown files below the input root, in sorted path
// order. The scan runs once; an unopenable root yields an empty slice and a
// warning, not an error. The only error returned is a discovered file that
// does not map below the input root, which means the roots are misconfigured.
func (f *Filesystem) Files() ([]File, error) {
	f.filesInit.Do(func() {
		f.filesInitErr = f.captureFiles()
	})
	return f.files, f.filesInitErr
}

func (f *Filesystem) captureFiles() error {
	root := f.Paths.InputRoot

	ok, err := afero.DirExists(f.SourceFs, root)
	if err != nil || !ok {
		log.Warnf("scan: cannot open directory %q, nothing to do", root)
		return nil
	}

	// Collect into a radix tree so the result order only depends on the
	// filesystem state, not on directory read order.
	found := radix.New()
	visited := make(map[string]bool)
	f.walk(root, visited, found)

	var fatal error
	found.Walk(func(filename string, _ any) bool {
		fi, err := f.NewFileInfo(filename)
		if err != nil {
			fatal = err
			return true
		}
		f.files = append(f.files, fi)
		return false
	})

	return fatal
}

// walk recurses into dir. visited holds canonicalized directories already
// entered; a directory reached again through a symlink is skipped.
func (f *Filesystem) walk(dir string, visited map[string]bool, found *radix.Tree) {
	canonical := paths.Canonicalize(f.SourceFs, dir)
	if visited[canonical] {
		log.Warnf("scan: %q already visited, skipping symlink cycle", dir)
		return
	}
	visited[canonical] = true

	entries, err := afero.ReadDir(f.SourceFs, dir)
	if err != nil {
		log.Warnf("scan: read directory %q: %v", dir, err)
		return
	}

	for _, entry := range entries {
		filename := filepath.Join(dir, entry.Name())

		if f.IgnoreFile(filename) {
			continue
		}

		if entry.IsDir() {
			f.walk(filename, visited, found)
			continue
		}

		ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(entry.Name()), "."))
		if ext != MarkdownExt {
			continue
		}

		found.Insert(filename, nil)
	}
}

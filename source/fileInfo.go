package source

import (
	"fmt"
	"path/filepath"
	"strings"
)

// File represents a markdown source file.
type File interface {
	// Filename gets the full path and filename to the file.
	Filename() string

	// Path gets the relative path including file name and extension.
	// The directory is relative to the input root.
	Path() string

	// Dir gets the name of the directory that contains this file.
	// The directory is relative to the input root.
	Dir() string

	// Ext gets the file extension, i.e "myblogpost.md" will return "md".
	Ext() string

	// LogicalName is filename and extension of the file.
	LogicalName() string

	// BaseFileName is a filename without extension.
	BaseFileName() string
}

// FileInfo describes a source file.
type FileInfo struct {
	// Absolute filename to the file on disk.
	filename string

	// Derived from filename, all relative to the input root.
	relPath  string
	relDir   string
	name     string
	baseName string
	ext      string
}

// NewFileInfo builds a FileInfo for an absolute filename below the input root.
func (sp *SourceSpec) NewFileInfo(filename string) (*FileInfo, error) {
	relPath, err := sp.Paths.RelSource(filename)
	if err != nil {
		return nil, fmt.Errorf("new file info: %w", err)
	}

	relDir := filepath.Dir(relPath)
	if relDir == "." {
		relDir = ""
	}

	name := filepath.Base(relPath)
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	baseName := strings.TrimSuffix(name, filepath.Ext(name))

	return &FileInfo{
		filename: filename,
		relPath:  relPath,
		relDir:   relDir,
		name:     name,
		baseName: baseName,
		ext:      ext,
	}, nil
}

// Filename returns a file's absolute path and filename on disk.
func (fi *FileInfo) Filename() string { return fi.filename }

// Path gets the relative path including file name and extension. The
// directory is relative to the input root.
func (fi *FileInfo) Path() string { return fi.relPath }

// Dir gets the name of the directory that contains this file, relative to
// the input root.
func (fi *FileInfo) Dir() string { return fi.relDir }

// Ext returns a file's extension without the leading period (ie. "md").
func (fi *FileInfo) Ext() string { return fi.ext }

// LogicalName returns a file's name and extension (ie. "page.md").
func (fi *FileInfo) LogicalName() string { return fi.name }

// BaseFileName returns a file's name without extension (ie. "page").
func (fi *FileInfo) BaseFileName() string { return fi.baseName }

package publisher

import (
	"errors"
	"io"

	"github.com/spf13/afero"

	"github.com/sunwei/mdsite/helpers"
)

// Publisher publishes a result file.
type Publisher interface {
	Publish(d Descriptor) error
}

// Descriptor describes one item to publish.
type Descriptor struct {
	// The content to publish.
	Src io.Reader

	// Where to publish this content. This is a filesystem-relative path,
	// below the output root.
	TargetPath string
}

// NewDestinationPublisher creates a new DestinationPublisher publishing to
// the given filesystem, usually the publish dir.
func NewDestinationPublisher(fs afero.Fs) DestinationPublisher {
	return DestinationPublisher{fs: fs}
}

// DestinationPublisher prepares and publishes an item to the defined
// destination, e.g. /out.
type DestinationPublisher struct {
	fs afero.Fs
}

// Publish writes the file to its destination, creating any missing parent
// directories.
func (p DestinationPublisher) Publish(d Descriptor) error {
	if d.TargetPath == "" {
		return errors.New("publish: must provide a TargetPath")
	}

	f, err := helpers.OpenFileForWriting(p.fs, d.TargetPath)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = io.Copy(f, d.Src)

	return err
}

package site

import (
	"bytes"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/sunwei/mdsite/log"
	"github.com/sunwei/mdsite/markup/converter"
	"github.com/sunwei/mdsite/publisher"
	"github.com/sunwei/mdsite/source"
)

// Build runs the whole pipeline: scan the input root, process every
// markdown file one at a time, then replicate the manifest assets.
// Per-item problems become skipped entries in the returned Report; the
// returned error is reserved for configuration-root-level failures.
func (s *Site) Build() (*Report, error) {
	log.Process("build", "start")
	warningsBefore := log.Warnings()

	files, err := s.SourceSpec.NewFilesystem().Files()
	if err != nil {
		return nil, err
	}

	report := &Report{}

	for _, fi := range files {
		result, err := s.buildPage(fi)
		if err != nil {
			return nil, err
		}
		report.add(result)
	}

	copied, skipped, err := s.Assets.Copy()
	if err != nil {
		return nil, err
	}
	report.AssetsCopied = copied
	report.AssetsSkipped = skipped
	// The counter is process-wide, so only the delta belongs to this build.
	report.Warnings = log.Warnings() - warningsBefore

	log.Process("build", fmt.Sprintf("done: %d pages published, %d skipped, %d assets copied",
		report.Published, report.Skipped, report.AssetsCopied))

	return report, nil
}

// buildPage runs one source file through read, convert, assemble and
// publish. The returned error is reserved for path mapping failures, which
// mean a misconfigured root; everything else is recorded on the result and
// the build moves on.
func (s *Site) buildPage(fi source.File) (PageResult, error) {
	target, err := s.Paths.PageTarget(fi.Filename())
	if err != nil {
		return PageResult{}, err
	}

	result := PageResult{
		Source: fi.Path(),
		Target: filepath.Join(s.Paths.OutputRoot, target),
	}

	src, err := afero.ReadFile(s.Fs.Source, fi.Filename())
	if err != nil {
		result.Err = fmt.Errorf("read %q: %w", fi.Path(), err)
		log.Warnf("render: %v, skipping", result.Err)
		return result, nil
	}

	cp := s.ContentSpec.Converters.Get("markdown")
	conv, err := cp.New(converter.DocumentContext{
		DocumentName: fi.Path(),
		Filename:     fi.Filename(),
	})
	if err != nil {
		result.Err = fmt.Errorf("new converter for %q: %w", fi.Path(), err)
		log.Warnf("render: %v, skipping", result.Err)
		return result, nil
	}

	r, err := conv.Convert(converter.RenderContext{Src: src})
	if err != nil {
		result.Err = fmt.Errorf("convert %q: %w", fi.Path(), err)
		log.Warnf("render: %v, skipping", result.Err)
		return result, nil
	}

	content := s.Layouts.Assemble(r.Title(), r.Bytes())

	if err := s.Publisher.Publish(publisher.Descriptor{
		Src:        bytes.NewReader(content),
		TargetPath: target,
	}); err != nil {
		result.Err = fmt.Errorf("write %q: %w", result.Target, err)
		log.Warnf("render: %v, continuing", result.Err)
		return result, nil
	}

	return result, nil
}

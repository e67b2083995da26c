package site

// PageResult is the tagged outcome of one page: published, or skipped with
// the diagnostic that explains why.
type PageResult struct {
	// Source path, relative to the input root.
	Source string

	// Target is the absolute destination path.
	Target string

	// Err is nil when the page was published.
	Err error
}

func (r PageResult) Published() bool { return r.Err == nil }

// Report accumulates the per-item outcomes of one run.
type Report struct {
	Pages []PageResult

	Published int
	Skipped   int

	AssetsCopied  int
	AssetsSkipped int

	// Warnings logged during the run, per-item problems included.
	Warnings int64
}

func (r *Report) add(pr PageResult) {
	r.Pages = append(r.Pages, pr)
	if pr.Published() {
		r.Published++
	} else {
		r.Skipped++
	}
}

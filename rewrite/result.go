package rewrite

// Status is the outcome of processing one file.
type Status int

const (
	// StatusUnchanged means the resolved content matched the file.
	StatusUnchanged Status = iota
	// StatusUpdated means the file was rewritten, or would be in a dry run.
	StatusUpdated
	// StatusMissing means the path did not exist.
	StatusMissing
	// StatusFailed means reading, decoding or writing failed.
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusUnchanged:
		return "unchanged"
	case StatusUpdated:
		return "updated"
	case StatusMissing:
		return "missing"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// FileResult describes what happened to one file.
type FileResult struct {
	Path   string
	Status Status
	// Unresolved lists marker paths that rendered as not-found diagnostics.
	Unresolved []string
	Err        error
}

// Changed reports whether the file content changed.
func (r FileResult) Changed() bool {
	return r.Status == StatusUpdated
}

// Report collects the results of a directory run in visit order.
type Report struct {
	Results []FileResult
}

// Changed returns the paths of files whose content changed.
func (r *Report) Changed() []string {
	var paths []string

	for _, result := range r.Results {
		if result.Changed() {
			paths = append(paths, result.Path)
		}
	}

	return paths
}

// Failed counts missing and failed files.
func (r *Report) Failed() int {
	count := 0

	for _, result := range r.Results {
		if result.Status == StatusMissing || result.Status == StatusFailed {
			count++
		}
	}

	return count
}

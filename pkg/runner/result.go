package runner

// FileOutcome records the conversion result for a single input file.
type FileOutcome struct {
	// Path is the input file path.
	Path string

	// Output is the path the HTML was (or would have been) written to.
	Output string

	// Written is true if the output file was created or updated. It is
	// false when the existing output was already up to date.
	Written bool

	// Error is set if the file could not be converted.
	Error error
}

// Stats captures aggregate information about a batch run.
type Stats struct {
	// FilesDiscovered is the total number of input files found.
	FilesDiscovered int

	// FilesConverted is the number of files whose output was written.
	FilesConverted int

	// FilesSkipped is the number of files whose output was already up to date.
	FilesSkipped int

	// FilesErrored is the number of files that failed to convert.
	FilesErrored int
}

// Result is the overall batch result. Files are ordered deterministically
// (by input path).
type Result struct {
	Files []FileOutcome
	Stats Stats
}

// HasFailures reports whether any file failed to convert.
func (r *Result) HasFailures() bool {
	if r == nil {
		return false
	}
	return r.Stats.FilesErrored > 0
}

// accumulate updates the result with a file outcome.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	switch {
	case outcome.Error != nil:
		r.Stats.FilesErrored++
	case outcome.Written:
		r.Stats.FilesConverted++
	default:
		r.Stats.FilesSkipped++
	}
}

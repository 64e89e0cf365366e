// Package runner provides multi-file conversion orchestration for batch mode.
package runner

import "github.com/yaklabco/md2html/pkg/config"

// Options controls batch conversion behavior.
type Options struct {
	// Paths are the user-specified paths (files or directories) to process.
	// If empty, defaults to the current working directory.
	Paths []string

	// WorkingDir is the base directory used to resolve relative Paths.
	// If empty, the current process working directory is used.
	WorkingDir string

	// Extensions is the set of file extensions (lowercase, with leading dot)
	// considered Markdown input.
	Extensions []string

	// ExcludeGlobs are glob patterns used to skip files or directories.
	ExcludeGlobs []string

	// Detect enables content-based Markdown detection for files without a
	// matching extension.
	Detect bool

	// OutputExtension is the extension for generated files. Defaults to
	// config.DefaultOutputExtension.
	OutputExtension string

	// Jobs controls the maximum number of concurrent workers.
	// 0 or negative means "auto" (runtime.NumCPU()).
	Jobs int
}

// effectiveExtensions returns the extensions to use, defaulting if empty.
func (o Options) effectiveExtensions() []string {
	if len(o.Extensions) == 0 {
		return config.DefaultExtensions()
	}
	return o.Extensions
}

// effectivePaths returns the paths to process, defaulting to "." if empty.
func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}

// effectiveOutputExtension returns the output extension, defaulting if empty.
func (o Options) effectiveOutputExtension() string {
	if o.OutputExtension == "" {
		return config.DefaultOutputExtension
	}
	return o.OutputExtension
}

package runner

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/yaklabco/md2html/pkg/langdetect"
)

// detectSampleSize is how much of a file is read for content-based detection.
const detectSampleSize = 8 * 1024

// Discover finds Markdown input files matching opts under the given working
// directory. It returns a deterministically sorted list of absolute paths.
func Discover(ctx context.Context, opts Options) ([]string, error) {
	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	extensions := opts.effectiveExtensions()
	paths := opts.effectivePaths()

	// Use a map for deduplication.
	seen := make(map[string]struct{})
	var files []string

	for _, inputPath := range paths {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("discovery cancelled: %w", ctx.Err())
		default:
		}

		absPath := inputPath
		if !filepath.IsAbs(inputPath) {
			absPath = filepath.Join(workDir, inputPath)
		}
		absPath = filepath.Clean(absPath)

		info, err := os.Stat(absPath)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", inputPath, err)
		}

		if info.IsDir() {
			discovered, err := walkDirectory(ctx, absPath, workDir, extensions, opts)
			if err != nil {
				return nil, err
			}
			for _, f := range discovered {
				if _, ok := seen[f]; !ok {
					seen[f] = struct{}{}
					files = append(files, f)
				}
			}
			continue
		}

		// An explicitly named file is converted regardless of extension.
		if _, ok := seen[absPath]; !ok {
			seen[absPath] = struct{}{}
			files = append(files, absPath)
		}
	}

	// Sort for deterministic ordering.
	sort.Strings(files)

	return files, nil
}

// resolveWorkDir resolves the working directory, defaulting to os.Getwd().
func resolveWorkDir(workDir string) (string, error) {
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		return wd, nil
	}
	absPath, err := filepath.Abs(workDir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}
	return absPath, nil
}

// walkDirectory recursively walks a directory and returns matching input files.
func walkDirectory(
	ctx context.Context,
	root string,
	workDir string,
	extensions []string,
	opts Options,
) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if walkErr != nil {
			// Skip unreadable subtrees rather than aborting the run.
			if os.IsPermission(walkErr) {
				return nil
			}
			return walkErr
		}

		relPath, relErr := filepath.Rel(workDir, path)
		if relErr != nil {
			relPath = path
		}

		if entry.IsDir() {
			// Skip hidden directories (except root).
			if path != root && strings.HasPrefix(entry.Name(), ".") {
				return filepath.SkipDir
			}
			if matchesGlobs(relPath, opts.ExcludeGlobs) {
				return filepath.SkipDir
			}
			return nil
		}

		if !entry.Type().IsRegular() {
			return nil
		}

		// Skip hidden files.
		if strings.HasPrefix(entry.Name(), ".") {
			return nil
		}

		if matchesGlobs(relPath, opts.ExcludeGlobs) {
			return nil
		}

		if hasMatchingExtension(path, extensions) || detectMarkdown(path, opts) {
			files = append(files, path)
		}

		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("walk directory %s: %w", root, err)
	}

	return files, nil
}

// detectMarkdown reports whether content detection classifies an
// extensionless file as Markdown. Files with some other extension are never
// picked up this way.
func detectMarkdown(path string, opts Options) bool {
	if !opts.Detect || filepath.Ext(path) != "" {
		return false
	}

	sample, err := readSample(path)
	if err != nil {
		return false
	}
	return langdetect.IsMarkdown(path, sample)
}

// readSample reads up to detectSampleSize bytes from the start of a file.
func readSample(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sample, err := io.ReadAll(io.LimitReader(f, detectSampleSize))
	if err != nil {
		return nil, err
	}
	return sample, nil
}

// hasMatchingExtension checks if the file has a matching extension.
func hasMatchingExtension(path string, extensions []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range extensions {
		if strings.ToLower(e) == ext {
			return true
		}
	}
	return false
}

// matchesGlobs checks if the path matches any of the patterns.
func matchesGlobs(relPath string, patterns []string) bool {
	for _, pattern := range patterns {
		if matchGlob(relPath, pattern) {
			return true
		}
	}
	return false
}

// matchGlob matches a path against a glob pattern. Patterns may use ** for
// recursive matching ("vendor/**", "**/testdata"); simple patterns also
// match against the bare filename.
func matchGlob(path, pattern string) bool {
	path = filepath.ToSlash(path)
	pattern = filepath.ToSlash(pattern)

	if strings.Contains(pattern, "**") {
		return matchDoubleStarPattern(path, pattern)
	}

	if matched, err := filepath.Match(pattern, path); err == nil && matched {
		return true
	}

	matched, err := filepath.Match(pattern, filepath.Base(path))
	return err == nil && matched
}

// matchDoubleStarPattern handles ** glob patterns.
func matchDoubleStarPattern(path, pattern string) bool {
	parts := strings.SplitN(pattern, "**", 2)

	prefix := strings.TrimSuffix(parts[0], "/")
	suffix := strings.TrimPrefix(parts[1], "/")

	// "prefix/**": anything under prefix.
	if suffix == "" {
		if prefix == "" {
			return true
		}
		return path == prefix || strings.HasPrefix(path, prefix+"/")
	}

	// "**/suffix": suffix anywhere in the tree.
	if prefix == "" {
		if strings.HasSuffix(path, suffix) || strings.Contains(path, suffix) {
			return true
		}
		for _, part := range strings.Split(path, "/") {
			if matched, err := filepath.Match(suffix, part); err == nil && matched {
				return true
			}
		}
		return false
	}

	// "prefix/**/suffix".
	if !strings.HasPrefix(path, prefix) {
		return false
	}
	if strings.HasSuffix(path, suffix) {
		return true
	}
	matched, err := filepath.Match(suffix, filepath.Base(path))
	return err == nil && matched
}

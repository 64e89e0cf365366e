package runner_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/md2html/pkg/runner"
)

func TestDiscover_ExtensionsAndHiddenFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"a.md":           "a\n",
		"b.markdown":     "b\n",
		"c.txt":          "c\n",
		".hidden.md":     "hidden\n",
		".git/config.md": "vcs\n",
	})

	files, err := runner.Discover(context.Background(), runner.Options{WorkingDir: dir})
	require.NoError(t, err)

	names := make([]string, len(files))
	for i, f := range files {
		names[i] = filepath.Base(f)
	}
	assert.Equal(t, []string{"a.md", "b.markdown"}, names)
}

func TestDiscover_CustomExtensions(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"a.md":   "a\n",
		"b.mdwn": "b\n",
	})

	files, err := runner.Discover(context.Background(), runner.Options{
		WorkingDir: dir,
		Extensions: []string{".mdwn"},
	})
	require.NoError(t, err)

	require.Len(t, files, 1)
	assert.Equal(t, "b.mdwn", filepath.Base(files[0]))
}

func TestDiscover_DeduplicatesOverlappingPaths(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"docs/a.md": "a\n"})

	files, err := runner.Discover(context.Background(), runner.Options{
		WorkingDir: dir,
		Paths:      []string{".", "docs", filepath.Join("docs", "a.md")},
	})
	require.NoError(t, err)
	assert.Len(t, files, 1)
}

func TestDiscover_DetectExtensionlessMarkdown(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		// Strongly Markdown-shaped content for the classifier.
		"CHANGES": "# Changelog\n\n## 1.0.0\n\n- first release\n- with *notes*\n\nSee [docs](docs/) for details.\n",
		"LICENSE": "Copyright (c) 2026\n\nPermission is hereby granted, free of charge...\n",
		"main.go": "package main\n",
	})

	// Without detection only recognized extensions match; the .go file is
	// excluded either way.
	files, err := runner.Discover(context.Background(), runner.Options{WorkingDir: dir})
	require.NoError(t, err)
	assert.Empty(t, files)

	files, err = runner.Discover(context.Background(), runner.Options{
		WorkingDir: dir,
		Detect:     true,
	})
	require.NoError(t, err)

	for _, f := range files {
		assert.NotEqual(t, "main.go", filepath.Base(f))
	}
}

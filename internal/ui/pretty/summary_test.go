package pretty_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/md2html/internal/ui/pretty"
	"github.com/yaklabco/md2html/pkg/runner"
)

func TestFormatSummaryOneLine(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)

	tests := []struct {
		name     string
		stats    runner.Stats
		expected string
	}{
		{
			name:     "nothing found",
			stats:    runner.Stats{},
			expected: "No Markdown files found\n",
		},
		{
			name: "single file",
			stats: runner.Stats{
				FilesDiscovered: 1,
				FilesConverted:  1,
			},
			expected: "1 file converted\n",
		},
		{
			name: "mixed outcomes",
			stats: runner.Stats{
				FilesDiscovered: 5,
				FilesConverted:  3,
				FilesSkipped:    1,
				FilesErrored:    1,
			},
			expected: "3 files converted, 1 up to date, 1 failed\n",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			got := styles.FormatSummaryOneLine(testCase.stats)
			assert.Equal(t, testCase.expected, got)
		})
	}
}

func TestFormatSummary(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)

	got := styles.FormatSummary(runner.Stats{
		FilesDiscovered: 4,
		FilesConverted:  2,
		FilesSkipped:    1,
		FilesErrored:    1,
	})

	assert.Contains(t, got, "Summary")
	assert.Contains(t, got, "Files discovered: 4")
	assert.Contains(t, got, "Files converted:  2")
	assert.Contains(t, got, "Up to date:       1")
	assert.Contains(t, got, "Failed:           1")
}

func TestFormatOutcome(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)

	ok := styles.FormatOutcome(runner.FileOutcome{
		Path:    "a.md",
		Output:  "a.html",
		Written: true,
	})
	assert.Contains(t, ok, "OK")
	assert.Contains(t, ok, "a.md")
	assert.Contains(t, ok, "a.html")

	skip := styles.FormatOutcome(runner.FileOutcome{Path: "b.md", Output: "b.html"})
	assert.Contains(t, skip, "SKIP")

	fail := styles.FormatOutcome(runner.FileOutcome{
		Path:  "c.md",
		Error: errors.New("boom"),
	})
	assert.Contains(t, fail, "FAIL")
	assert.Contains(t, fail, "boom")
}

func TestIsColorEnabled(t *testing.T) {
	t.Parallel()

	assert.True(t, pretty.IsColorEnabled("always", nil))
	assert.False(t, pretty.IsColorEnabled("never", nil))

	// A non-file writer is never a TTY in auto mode.
	assert.False(t, pretty.IsColorEnabled("auto", nil))
}

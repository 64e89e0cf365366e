package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/md2html/pkg/runner"
)

const (
	summaryDividerWidth = 40
	wordFile            = "file"
	wordFiles           = "files"
)

// FormatSummaryOneLine formats batch statistics as a single line.
// Example: "3 files converted, 1 up to date, 1 failed".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	if stats.FilesDiscovered == 0 {
		return s.Dim.Render("No Markdown files found") + "\n"
	}

	fileWord := wordFiles
	if stats.FilesConverted == 1 {
		fileWord = wordFile
	}

	parts := []string{
		s.Success.Render(fmt.Sprintf("%d %s converted", stats.FilesConverted, fileWord)),
	}

	if stats.FilesSkipped > 0 {
		parts = append(parts, s.Dim.Render(fmt.Sprintf("%d up to date", stats.FilesSkipped)))
	}

	if stats.FilesErrored > 0 {
		parts = append(parts, s.Failure.Render(fmt.Sprintf("%d failed", stats.FilesErrored)))
	}

	return strings.Join(parts, ", ") + "\n"
}

// FormatSummary formats batch statistics as a summary block.
func (s *Styles) FormatSummary(stats runner.Stats) string {
	var builder strings.Builder

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	builder.WriteString("  Files discovered: " +
		s.SummaryValue.Render(strconv.Itoa(stats.FilesDiscovered)) + "\n")
	builder.WriteString("  Files converted:  " +
		s.Success.Render(strconv.Itoa(stats.FilesConverted)) + "\n")

	if stats.FilesSkipped > 0 {
		builder.WriteString("  Up to date:       " +
			s.SummaryValue.Render(strconv.Itoa(stats.FilesSkipped)) + "\n")
	}

	if stats.FilesErrored > 0 {
		builder.WriteString("  Failed:           " +
			s.Failure.Render(strconv.Itoa(stats.FilesErrored)) + "\n")
	}

	return builder.String()
}

// FormatOutcome formats a single file outcome line for verbose batch output.
func (s *Styles) FormatOutcome(outcome runner.FileOutcome) string {
	switch {
	case outcome.Error != nil:
		return s.Failure.Render("FAIL") + "  " + s.FilePath.Render(outcome.Path) +
			": " + outcome.Error.Error() + "\n"
	case outcome.Written:
		return s.Success.Render("OK") + "    " + s.FilePath.Render(outcome.Path) +
			" " + s.Dim.Render("-> "+outcome.Output) + "\n"
	default:
		return s.Dim.Render("SKIP") + "  " + s.FilePath.Render(outcome.Path) +
			" " + s.Dim.Render("(up to date)") + "\n"
	}
}

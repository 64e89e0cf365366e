// Package convert implements a line-oriented converter from a restricted
// Markdown dialect to HTML fragments.
//
// The dialect supports headings, unordered lists ("- "), ordered lists ("* "),
// paragraphs, bold (**) and emphasis (__) spans, plus two custom inline
// directives: [[text]] is replaced by the MD5 digest of its content, and
// ((text)) is replaced by its content with every c/C removed. It is not a
// CommonMark engine: there are no nested lists, tables, code fences, links,
// or images.
package convert

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/yaklabco/md2html/pkg/fsutil"
)

// maxLineSize bounds a single input line (1 MiB).
const maxLineSize = 1 << 20

// Convert reads Markdown lines from r and writes HTML fragment lines to w.
// Input is consumed strictly in order, one line at a time, with no lookahead.
// Any block element still open at end of input is closed before returning.
func Convert(ctx context.Context, r io.Reader, w io.Writer) error {
	select {
	case <-ctx.Done():
		return fmt.Errorf("convert: %w", ctx.Err())
	default:
	}

	out := bufio.NewWriter(w)
	conv := &conversion{out: out}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for scanner.Scan() {
		if err := conv.line(scanner.Text()); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	if err := conv.finish(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	if err := out.Flush(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// ConvertFile converts the file at inputPath and writes the result to
// outputPath. The output is written atomically: on any failure the previous
// content of outputPath (or its absence) is preserved, never a torn file.
func ConvertFile(ctx context.Context, inputPath, outputPath string) error {
	content, _, err := fsutil.ReadFile(ctx, inputPath)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := Convert(ctx, bytes.NewReader(content), &buf); err != nil {
		return fmt.Errorf("convert %s: %w", inputPath, err)
	}

	if err := fsutil.WriteAtomic(ctx, outputPath, buf.Bytes(), 0); err != nil {
		return fmt.Errorf("write %s: %w", outputPath, err)
	}
	return nil
}

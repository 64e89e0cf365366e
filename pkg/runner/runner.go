package runner

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/yaklabco/md2html/internal/logging"
	"github.com/yaklabco/md2html/pkg/convert"
	"github.com/yaklabco/md2html/pkg/fsutil"
)

// Run discovers Markdown files under opts.Paths and converts them
// concurrently, writing each output next to its input with the configured
// output extension. Each individual file conversion is strictly sequential;
// only independent files run in parallel.
//
// Results are collected in deterministic order (sorted by input path)
// regardless of worker completion order. A file that fails to convert is
// recorded in its outcome; it does not abort the run.
func Run(ctx context.Context, opts Options) (*Result, error) {
	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Files: make([]FileOutcome, 0, len(files)),
	}
	result.Stats.FilesDiscovered = len(files)

	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	if jobs > len(files) {
		jobs = len(files)
	}

	outputExt := opts.effectiveOutputExtension()

	workCh := make(chan string)
	outCh := make(chan FileOutcome)

	var wg sync.WaitGroup

	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker(ctx, workCh, outCh, outputExt)
		}()
	}

	// Feed work in a separate goroutine.
	go func() {
		defer close(workCh)
		for _, path := range files {
			select {
			case <-ctx.Done():
				return
			case workCh <- path:
			}
		}
	}()

	// Close outCh when all workers are done.
	go func() {
		wg.Wait()
		close(outCh)
	}()

	// Workers may complete out of order; index outcomes by path and
	// rebuild in discovery order.
	outcomes := make(map[string]FileOutcome, len(files))
	for outcome := range outCh {
		outcomes[outcome.Path] = outcome
	}

	for _, path := range files {
		if outcome, ok := outcomes[path]; ok {
			result.accumulate(outcome)
		}
	}

	if ctx.Err() != nil {
		return result, fmt.Errorf("run cancelled: %w", ctx.Err())
	}

	return result, nil
}

// worker converts files from workCh and sends outcomes to outCh.
func worker(ctx context.Context, workCh <-chan string, outCh chan<- FileOutcome, outputExt string) {
	logger := logging.FromContext(ctx)

	for path := range workCh {
		select {
		case <-ctx.Done():
			return
		default:
		}

		outcome := convertOne(ctx, path, outputExt)
		if outcome.Error != nil {
			logger.Debug("conversion failed",
				logging.FieldPath, path,
				logging.FieldError, outcome.Error,
			)
		}

		select {
		case <-ctx.Done():
			return
		case outCh <- outcome:
		}
	}
}

// convertOne converts a single input file, skipping the write when the
// existing output already matches.
func convertOne(ctx context.Context, path, outputExt string) FileOutcome {
	outcome := FileOutcome{
		Path:   path,
		Output: OutputPath(path, outputExt),
	}

	content, _, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		outcome.Error = err
		return outcome
	}

	var buf bytes.Buffer
	if err := convert.Convert(ctx, bytes.NewReader(content), &buf); err != nil {
		outcome.Error = fmt.Errorf("convert %s: %w", path, err)
		return outcome
	}

	written, err := fsutil.WriteAtomicIfChanged(ctx, outcome.Output, buf.Bytes(), 0)
	if err != nil {
		outcome.Error = fmt.Errorf("write %s: %w", outcome.Output, err)
		return outcome
	}

	outcome.Written = written
	return outcome
}

// OutputPath derives the output file path for an input path: the input
// extension (if any) is replaced by outputExt, otherwise outputExt is
// appended.
func OutputPath(path, outputExt string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + outputExt
}

package cli

import (
	"errors"

	"github.com/yaklabco/md2html/internal/configloader"
	"github.com/yaklabco/md2html/pkg/fsutil"
)

// Exit codes for md2html.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitConversionFailures indicates a batch run completed but some
	// files failed to convert.
	ExitConversionFailures = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors, including a missing input file.
	ExitIOError = 74
)

// ExitCodeForError maps an error from command execution to a process exit code.
func ExitCodeForError(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrInvalidArgs):
		return ExitInvalidUsage
	case errors.Is(err, ErrConversionFailures):
		return ExitConversionFailures
	case errors.Is(err, configloader.ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, fsutil.ErrNotFound),
		errors.Is(err, fsutil.ErrIsDirectory),
		errors.Is(err, fsutil.ErrNotRegular),
		errors.Is(err, fsutil.ErrPermissionDenied):
		return ExitIOError
	default:
		return ExitInternalError
	}
}

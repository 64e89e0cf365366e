// Package main is the entry point for the md2html CLI.
package main

import (
	"errors"
	"os"

	"github.com/yaklabco/md2html/internal/cli"
	"github.com/yaklabco/md2html/internal/logging"
)

// Build-time variables set by GoReleaser via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	rootCmd := cli.NewRootCommand(info)

	if err := rootCmd.Execute(); err != nil {
		// Don't log ErrConversionFailures - the batch output already
		// reported each failed file.
		if !errors.Is(err, cli.ErrConversionFailures) {
			logger := logging.Default()
			logger.Error("command failed", logging.FieldError, err)
		}
		return cli.ExitCodeForError(err)
	}

	return cli.ExitSuccess
}

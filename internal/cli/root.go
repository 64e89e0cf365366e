// Package cli provides the Cobra command structure for md2html.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/md2html/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root md2html command with all subcommands.
// The root command itself converts a single file:
//
//	md2html README.md README.html
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "md2html <input-path> <output-path>",
		Short: "Convert restricted-dialect Markdown to HTML",
		Long: `md2html converts a restricted Markdown dialect to HTML fragments.

The dialect supports headings, unordered ("- ") and ordered ("* ") lists,
paragraphs, **bold** and __emphasis__ spans, and two inline directives:
[[text]] is replaced by the MD5 digest of its content, and ((text)) is
replaced by its content with every c/C removed.

Processing is line-oriented and single-pass. The output is an HTML
fragment (no <html>/<body> wrapper), written atomically so a failed run
never leaves a partial output file.`,
		Example: `  md2html README.md README.html
  md2html batch docs/
  md2html batch --jobs 8 --ignore 'vendor/**'`,
		Args: validateConvertArgs,
		RunE: runConvert,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newBatchCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	// Apply styled help formatting.
	helpFormatter := NewHelpFormatter(color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}

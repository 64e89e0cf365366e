package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/md2html/internal/configloader"
	"github.com/yaklabco/md2html/internal/logging"
	"github.com/yaklabco/md2html/internal/ui/pretty"
	"github.com/yaklabco/md2html/pkg/config"
	"github.com/yaklabco/md2html/pkg/runner"
)

// ErrConversionFailures is returned when a batch run completes but some
// files failed to convert. The failures are reported per file, so callers
// should not log this error again.
var ErrConversionFailures = errors.New("conversion failures")

type batchFlags struct {
	verbose bool
	summary bool
}

func newBatchCommand() *cobra.Command {
	var cfg config.Config
	flags := &batchFlags{}

	cmd := &cobra.Command{
		Use:   "batch [paths...]",
		Short: "Convert all Markdown files under the given paths",
		Long: `Convert every Markdown file under the given paths (default: the
current directory) to a sibling HTML file. Files and directories are
discovered by extension; with --detect, extensionless files whose content
classifies as Markdown are picked up as well.

Independent files are converted concurrently; each individual file is
still processed as a strict single pass.

Examples:
  md2html batch                     # Convert current directory
  md2html batch docs/               # Convert docs directory
  md2html batch --jobs 8            # Use 8 workers
  md2html batch --ignore 'vendor/**'
  md2html batch --output-ext .htm`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(cmd, args, &cfg, flags)
		},
	}

	cmd.Flags().IntVar(&cfg.Jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringVar(&cfg.OutputExtension, "output-ext", "",
		"extension for generated files (default .html)")
	cmd.Flags().StringSliceVar(&cfg.Ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().StringSliceVar(&cfg.Extensions, "ext", nil,
		"input extensions treated as Markdown (default .md,.markdown)")
	cmd.Flags().BoolVar(&cfg.Detect, "detect", false,
		"classify extensionless files by content")
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false,
		"print one line per converted file")
	cmd.Flags().BoolVar(&flags.summary, "summary", false, "print a summary block")

	return cmd
}

func runBatch(cmd *cobra.Command, args []string, cliCfg *config.Config, flags *batchFlags) error {
	logger := logging.Default()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// Get the explicit config path from the root command's persistent flag.
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cliCfg,
	})
	if err != nil {
		return err
	}

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldPaths, loadResult.LoadedFrom)
	}

	finalCfg := loadResult.Config

	runOpts := runner.Options{
		Paths:           args,
		WorkingDir:      workDir,
		Extensions:      finalCfg.Extensions,
		ExcludeGlobs:    finalCfg.Ignore,
		Detect:          finalCfg.Detect,
		OutputExtension: finalCfg.OutputExtension,
		Jobs:            finalCfg.Jobs,
	}

	logger.Debug("starting batch run",
		logging.FieldPaths, runOpts.Paths,
		logging.FieldWorkingDir, runOpts.WorkingDir,
		logging.FieldJobs, runOpts.Jobs,
		logging.FieldOutputExt, runOpts.OutputExtension,
		logging.FieldDetect, runOpts.Detect,
	)

	result, err := runner.Run(logging.WithLogger(ctx, logger), runOpts)
	if err != nil {
		return errors.Join(errors.New("batch run failed"), err)
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}
	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, cmd.OutOrStdout()))

	out := cmd.OutOrStdout()
	for _, outcome := range result.Files {
		if flags.verbose || outcome.Error != nil {
			fmt.Fprint(out, styles.FormatOutcome(outcome))
		}
	}

	if flags.summary {
		fmt.Fprint(out, styles.FormatSummary(result.Stats))
	} else {
		fmt.Fprint(out, styles.FormatSummaryOneLine(result.Stats))
	}

	if result.HasFailures() {
		return ErrConversionFailures
	}
	return nil
}

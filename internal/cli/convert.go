package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/md2html/internal/logging"
	"github.com/yaklabco/md2html/pkg/convert"
)

// ErrInvalidArgs is returned for command-line usage errors.
var ErrInvalidArgs = errors.New("usage: md2html <input-path> <output-path>")

// validateConvertArgs enforces the two positional arguments of the root
// command.
func validateConvertArgs(_ *cobra.Command, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w (got %d arguments)", ErrInvalidArgs, len(args))
	}
	return nil
}

// runConvert converts a single input file to a single output file.
func runConvert(cmd *cobra.Command, args []string) error {
	logger := logging.Default()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	inputPath, outputPath := args[0], args[1]

	logger.Debug("converting",
		logging.FieldInput, inputPath,
		logging.FieldOutput, outputPath,
	)

	if err := convert.ConvertFile(ctx, inputPath, outputPath); err != nil {
		return err
	}

	logger.Debug("wrote output", logging.FieldOutput, outputPath)
	return nil
}

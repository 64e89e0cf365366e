package configloader

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yaklabco/md2html/pkg/config"
)

// ErrInvalidConfig is the category error for configuration validation failures.
var ErrInvalidConfig = errors.New("invalid configuration")

// maxJobs bounds the worker pool to something sane.
const maxJobs = 256

// validate checks the resolved configuration for usable values.
func validate(cfg *config.Config) error {
	if cfg == nil {
		return fmt.Errorf("%w: nil config", ErrInvalidConfig)
	}

	if cfg.Jobs < 0 || cfg.Jobs > maxJobs {
		return fmt.Errorf("%w: jobs must be between 0 and %d, got %d",
			ErrInvalidConfig, maxJobs, cfg.Jobs)
	}

	if cfg.OutputExtension != "" && !strings.HasPrefix(cfg.OutputExtension, ".") {
		return fmt.Errorf("%w: output_extension must start with a dot, got %q",
			ErrInvalidConfig, cfg.OutputExtension)
	}

	for _, ext := range cfg.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("%w: extension must start with a dot, got %q",
				ErrInvalidConfig, ext)
		}
	}

	return nil
}

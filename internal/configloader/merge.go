package configloader

import "github.com/yaklabco/md2html/pkg/config"

// merge combines two configurations, with override taking precedence.
//   - Scalars: override wins if non-zero
//   - Slices: override replaces base entirely if non-nil
//   - Booleans: override can set but not unset (false is the zero value)
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := *base

	if override.OutputExtension != "" {
		result.OutputExtension = override.OutputExtension
	}
	if override.Jobs != 0 {
		result.Jobs = override.Jobs
	}
	if override.Detect {
		result.Detect = override.Detect
	}

	if override.Extensions != nil {
		result.Extensions = override.Extensions
	}
	if override.Ignore != nil {
		result.Ignore = override.Ignore
	}

	return &result
}

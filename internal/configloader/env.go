package configloader

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/yaklabco/md2html/pkg/config"
)

// envVarPrefix is the prefix for all md2html environment variables.
const envVarPrefix = "MD2HTML_"

// loadFromEnv applies environment variable overrides to the configuration.
// Recognized variables:
//
//	MD2HTML_JOBS        int
//	MD2HTML_OUTPUT_EXT  string
//	MD2HTML_EXTENSIONS  comma-separated list
//	MD2HTML_IGNORE      comma-separated list
//	MD2HTML_DETECT      bool
func loadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	if value := os.Getenv(envVarPrefix + "JOBS"); value != "" {
		jobs, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%sJOBS: %w", envVarPrefix, err)
		}
		cfg.Jobs = jobs
	}

	if value := os.Getenv(envVarPrefix + "OUTPUT_EXT"); value != "" {
		cfg.OutputExtension = value
	}

	if value := os.Getenv(envVarPrefix + "EXTENSIONS"); value != "" {
		cfg.Extensions = splitList(value)
	}

	if value := os.Getenv(envVarPrefix + "IGNORE"); value != "" {
		cfg.Ignore = splitList(value)
	}

	if value := os.Getenv(envVarPrefix + "DETECT"); value != "" {
		detect, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%sDETECT: %w", envVarPrefix, err)
		}
		cfg.Detect = detect
	}

	return nil
}

// splitList splits a comma-separated environment value, trimming whitespace
// and dropping empty entries.
func splitList(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

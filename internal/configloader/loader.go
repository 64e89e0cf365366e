// Package configloader provides configuration loading and resolution.
// It implements project-file discovery, XDG user configuration,
// environment variable support, and hierarchical merging.
package configloader

import (
	"context"
	"fmt"
	"os"

	"github.com/yaklabco/md2html/pkg/config"
)

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// WorkingDir is the directory to search from for project config.
	// Defaults to current working directory if empty.
	WorkingDir string

	// ExplicitPath is an explicit config file path (from --config flag).
	// If set, project config discovery is skipped.
	ExplicitPath string

	// IgnoreUserConfig skips loading user-level configuration.
	IgnoreUserConfig bool

	// IgnoreEnv skips loading environment variables.
	IgnoreEnv bool

	// CLIConfig contains configuration from CLI flags.
	// These take highest precedence.
	CLIConfig *config.Config
}

// LoadResult contains the resolved configuration and metadata.
type LoadResult struct {
	// Config is the final merged configuration.
	Config *config.Config

	// LoadedFrom lists the files that were actually loaded (in order).
	LoadedFrom []string

	// Warnings contains non-fatal issues encountered during loading.
	Warnings []string
}

// Load resolves the final configuration by merging all sources.
// Precedence (highest to lowest):
//  1. CLI flags (opts.CLIConfig)
//  2. Environment variables (MD2HTML_*)
//  3. Explicit config file (opts.ExplicitPath)
//  4. Project config (.md2html.yml upward search)
//  5. User config ($XDG_CONFIG_HOME/md2html/config.yaml)
//  6. Defaults
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("load config: %w", ctx.Err())
	default:
	}

	result := &LoadResult{}

	workDir := opts.WorkingDir
	if workDir == "" {
		var err error
		workDir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
	}

	cfg := config.NewConfig()

	// User config, lowest file-level precedence.
	if !opts.IgnoreUserConfig {
		if userPath := userConfigPath(); userPath != "" {
			loaded, err := loadFile(userPath)
			if err != nil {
				result.Warnings = append(result.Warnings,
					fmt.Sprintf("skipping user config %s: %v", userPath, err))
			} else if loaded != nil {
				cfg = merge(cfg, loaded)
				result.LoadedFrom = append(result.LoadedFrom, userPath)
			}
		}
	}

	// Project config, or the explicit file when --config is given.
	filePath := opts.ExplicitPath
	if filePath == "" {
		filePath = discoverProjectConfig(workDir)
	}
	if filePath != "" {
		loaded, err := loadFile(filePath)
		if err != nil {
			if opts.ExplicitPath != "" {
				// An explicitly named config that fails to load is fatal.
				return nil, fmt.Errorf("load config %s: %w", filePath, err)
			}
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("skipping project config %s: %v", filePath, err))
		} else if loaded != nil {
			cfg = merge(cfg, loaded)
			result.LoadedFrom = append(result.LoadedFrom, filePath)
		}
	}

	// Environment overrides.
	if !opts.IgnoreEnv {
		if err := loadFromEnv(cfg); err != nil {
			return nil, fmt.Errorf("load environment: %w", err)
		}
	}

	// CLI flags take highest precedence.
	cfg = merge(cfg, opts.CLIConfig)

	if err := validate(cfg); err != nil {
		return nil, err
	}

	result.Config = cfg
	return result, nil
}

// loadFile reads and parses one YAML config file. A missing file is not an
// error; it returns (nil, nil).
func loadFile(path string) (*config.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read: %w", err)
	}
	return config.FromYAML(data)
}

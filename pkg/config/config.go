// Package config defines core configuration types for md2html.
// These types are pure data structures with no dependency on how they are
// discovered or loaded.
package config

// Config is the root configuration structure for md2html.
type Config struct {
	// Extensions is the set of input file extensions (lowercase, with
	// leading dot) treated as Markdown during batch conversion.
	Extensions []string `yaml:"extensions"`

	// OutputExtension is the extension given to generated HTML files
	// during batch conversion.
	OutputExtension string `yaml:"output_extension"`

	// Ignore is a list of glob patterns excluded from batch discovery.
	Ignore []string `yaml:"ignore"`

	// Jobs is the number of concurrent batch workers. 0 means auto
	// (one per CPU).
	Jobs int `yaml:"jobs"`

	// Detect enables content-based Markdown detection for files without
	// a recognized extension during batch discovery.
	Detect bool `yaml:"detect"`
}

// NewConfig returns a Config populated with defaults.
func NewConfig() *Config {
	return &Config{
		Extensions:      DefaultExtensions(),
		OutputExtension: DefaultOutputExtension,
		Ignore:          nil,
		Jobs:            0,
		Detect:          false,
	}
}

// DefaultOutputExtension is the extension for generated HTML files.
const DefaultOutputExtension = ".html"

// DefaultExtensions returns the default set of Markdown input extensions.
func DefaultExtensions() []string {
	return []string{".md", ".markdown"}
}

// Clone creates a deep copy of the configuration.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}

	clone := *c
	clone.Extensions = append([]string(nil), c.Extensions...)
	clone.Ignore = append([]string(nil), c.Ignore...)
	return &clone
}

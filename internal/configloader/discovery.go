package configloader

import (
	"os"
	"path/filepath"
)

// projectConfigFiles are the config file names we search for, in order of
// preference.
//
//nolint:gochecknoglobals // Read-only lookup table.
var projectConfigFiles = []string{
	".md2html.yml",
	".md2html.yaml",
	"md2html.yml",
	"md2html.yaml",
}

// vcsRootMarkers are directories that indicate a VCS root and stop the
// upward search.
//
//nolint:gochecknoglobals // Read-only lookup table.
var vcsRootMarkers = []string{".git", ".hg", ".svn"}

// discoverProjectConfig searches upward from workDir for a project config
// file, stopping at a VCS root or the filesystem root. Returns "" if none
// is found.
func discoverProjectConfig(workDir string) string {
	dir := workDir
	for {
		for _, name := range projectConfigFiles {
			candidate := filepath.Join(dir, name)
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return candidate
			}
		}

		if isVCSRoot(dir) {
			return ""
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// isVCSRoot reports whether dir contains a VCS marker directory.
func isVCSRoot(dir string) bool {
	for _, marker := range vcsRootMarkers {
		if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
			return true
		}
	}
	return false
}

// userConfigPath returns the user-level config path, or "" if the config
// home cannot be determined. Follows XDG: $XDG_CONFIG_HOME/md2html/config.yaml.
func userConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "md2html", "config.yaml")
}

package config

import "context"

// Loader is the interface for a format-specific configuration loader.
type Loader interface {
	// Load reads the configuration for the project rooted at projectDir.
	// path names an explicit configuration file; when empty the loader looks
	// for its default file in projectDir and falls back to DefaultModel.
	Load(ctx context.Context, projectDir, path string) (*Model, error)
}

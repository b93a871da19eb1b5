package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ProjectDir string
	ConfigPath string // optional; empty means <ProjectDir>/piohook.hcl if present
	Assembler  string // optional; overrides every rule's assembler
	DryRun     bool

	LogFormat string
	LogLevel  string
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.ProjectDir == "" {
		return nil, errors.New("ProjectDir is a required configuration field and cannot be empty")
	}
	return &cfg, nil
}

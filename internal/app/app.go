package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/piohook/internal/config"
	"github.com/vk/piohook/internal/ctxlog"
	"github.com/vk/piohook/internal/toolexec"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	logger *slog.Logger
	config *Config
	model  *config.Model
	runner toolexec.Runner
}

// NewApp builds an App with its own isolated logger writing to outW, loads
// the hook configuration through loader and applies CLI overrides.
func NewApp(outW io.Writer, appConfig *Config, loader config.Loader, runner toolexec.Runner) (*App, error) {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	model, err := loader.Load(ctx, appConfig.ProjectDir, appConfig.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	logger.Debug("Configuration loaded.", "rules", len(model.Rules))

	if appConfig.Assembler != "" {
		for _, rule := range model.Rules {
			rule.Assembler = appConfig.Assembler
		}
		logger.Debug("Assembler overridden from command line.", "assembler", appConfig.Assembler)
	}

	return &App{
		logger: logger,
		config: appConfig,
		model:  model,
		runner: runner,
	}, nil
}

// Model returns the loaded configuration model. This is primarily for testing.
func (a *App) Model() *config.Model {
	return a.model
}

package app

import (
	"context"
	"fmt"

	"github.com/vk/piohook/internal/ctxlog"
	"github.com/vk/piohook/internal/pioasm"
)

// Run applies every compile rule to the project in order. It stops at the
// first rule whose source directory cannot be listed; assembler failures
// are only logged.
func (a *App) Run(ctx context.Context) ([]*pioasm.Result, error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "project_dir", a.config.ProjectDir)

	var results []*pioasm.Result
	compiled, failed := 0, 0
	for _, rule := range a.model.Rules {
		hook := pioasm.New(rule, a.runner)
		hook.DryRun = a.config.DryRun

		result, err := hook.Run(ctx, a.config.ProjectDir)
		if err != nil {
			return results, fmt.Errorf("compile rule %q: %w", rule.Name, err)
		}
		results = append(results, result)
		compiled += len(result.Invocations)
		failed += len(result.Failed())
	}

	a.logger.Info("🏁 PIO compilation finished.", "rules", len(a.model.Rules), "invocations", compiled, "failed", failed)
	return results, nil
}

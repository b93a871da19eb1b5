package pioasm

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/vk/piohook/internal/config"
	"github.com/vk/piohook/internal/ctxlog"
	"github.com/vk/piohook/internal/fsutil"
	"github.com/vk/piohook/internal/toolexec"
)

// Invocation records one attempted assembler call.
type Invocation struct {
	Source string
	Output string
	Argv   []string
	// Err is the runner's error, nil on success or in dry-run mode.
	Err error
}

// Result holds the invocations of a single rule in listing order.
type Result struct {
	Rule        string
	AssetDir    string
	Invocations []Invocation
}

// Failed returns the invocations whose assembler call failed.
func (r *Result) Failed() []Invocation {
	var failed []Invocation
	for _, inv := range r.Invocations {
		if inv.Err != nil {
			failed = append(failed, inv)
		}
	}
	return failed
}

// Hook compiles the assets matched by one rule.
type Hook struct {
	Rule   *config.Rule
	Runner toolexec.Runner
	// DryRun logs and records invocations without running the assembler.
	DryRun bool
}

// New returns a Hook for rule using runner.
func New(rule *config.Rule, runner toolexec.Runner) *Hook {
	return &Hook{Rule: rule, Runner: runner}
}

// Run scans <projectRoot>/<SourceDir> and invokes the assembler once per
// matching entry. The directory is not checked beforehand; a listing error
// is returned before any invocation. Assembler errors are recorded in the
// result and the loop moves on to the next entry. Cancelling ctx stops the
// loop before the next invocation.
func (h *Hook) Run(ctx context.Context, projectRoot string) (*Result, error) {
	logger := ctxlog.FromContext(ctx).With("rule", h.Rule.Name)

	assetDir := filepath.Join(projectRoot, h.Rule.SourceDir)
	logger.Debug("Scanning asset directory.", "dir", assetDir, "suffix", h.Rule.SourceSuffix)

	entries, err := fsutil.ListBySuffix(assetDir, h.Rule.SourceSuffix)
	if err != nil {
		return nil, fmt.Errorf("failed to list asset directory %s: %w", assetDir, err)
	}

	result := &Result{Rule: h.Rule.Name, AssetDir: assetDir}
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return result, fmt.Errorf("compilation interrupted: %w", err)
		}
		if entry.IsDir() {
			logger.Debug("Matched entry is a directory, passing it to the assembler anyway.", "entry", entry.Name())
		}

		source := filepath.Join(assetDir, entry.Name())
		output := OutputPath(assetDir, entry.Name(), h.Rule.SourceSuffix, h.Rule.OutputSuffix)
		argv := Command(h.Rule, source, output)
		cmdLine := toolexec.Format(argv[0], argv[1:]...)

		inv := Invocation{Source: source, Output: output, Argv: argv}
		if h.DryRun {
			logger.Info("Compiling PIO (dry run).", "cmd", cmdLine)
		} else {
			logger.Info("Compiling PIO.", "cmd", cmdLine)
			inv.Err = h.Runner.Run(ctx, argv[0], argv[1:]...)
			if inv.Err != nil {
				if code, ok := toolexec.ExitCode(inv.Err); ok {
					logger.Warn("Assembler exited with non-zero status.", "source", source, "exit_code", code)
				} else {
					logger.Warn("Assembler could not be run.", "source", source, "error", inv.Err)
				}
			}
		}
		result.Invocations = append(result.Invocations, inv)
	}

	logger.Debug("Asset directory processed.", "matched", len(result.Invocations), "failed", len(result.Failed()))
	return result, nil
}

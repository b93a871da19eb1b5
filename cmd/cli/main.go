package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/vk/piohook/internal/app"
	"github.com/vk/piohook/internal/cli"
	"github.com/vk/piohook/internal/hcl"
	"github.com/vk/piohook/internal/toolexec"
)

// main is the entrypoint for the piohook pre-build step.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The real main function handles errors and exit codes.
	if err := run(ctx, os.Stdout, os.Args[1:], toolexec.NewExecRunner()); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			stop()
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(ctx context.Context, outW io.Writer, args []string, runner toolexec.Runner) error {
	appConfig, shouldExit, err := cli.Parse(args, outW, os.Getenv)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	hookApp, err := app.NewApp(outW, appConfig, hcl.NewLoader(), runner)
	if err != nil {
		return err
	}

	_, err = hookApp.Run(ctx)
	return err
}

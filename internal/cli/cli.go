package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/piohook/internal/app"
)

// ProjectDirEnv is the variable the host build framework sets to the
// project root before running pre-build hooks.
const ProjectDirEnv = "PROJECT_DIR"

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. getenv is consulted for
// PROJECT_DIR when no project directory is given on the command line. It
// returns a populated Config, a boolean indicating if the program should
// exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer, getenv func(string) string) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("piohook", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
piohook - Compile PIO programs into C headers before a firmware build.

Usage:
  piohook [options] [PROJECT_DIR]

Arguments:
  PROJECT_DIR
    Project root containing the src/ directory. Defaults to $PROJECT_DIR.

Options:
`)
		flagSet.PrintDefaults()
	}

	projectFlag := flagSet.String("project-dir", "", "Project root directory.")
	pFlag := flagSet.String("p", "", "Project root directory (shorthand).")
	configFlag := flagSet.String("config", "", "Path to an HCL config file. Defaults to <project>/piohook.hcl when present.")
	assemblerFlag := flagSet.String("assembler", "", "Assembler executable, overriding the configured one.")
	dryRunFlag := flagSet.Bool("dry-run", false, "Log assembler commands without running them.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := ""
	switch {
	case *projectFlag != "":
		path = *projectFlag
	case *pFlag != "":
		path = *pFlag
	case flagSet.NArg() > 0:
		path = flagSet.Arg(0)
	case getenv != nil:
		path = getenv(ProjectDirEnv)
	}
	slog.Debug("Project path determined.", "path", path)

	if path == "" {
		slog.Debug("No project path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		ProjectDir: path,
		ConfigPath: *configFlag,
		Assembler:  *assemblerFlag,
		DryRun:     *dryRunFlag,
		LogFormat:  logFormat,
		LogLevel:   logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

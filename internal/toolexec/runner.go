// Package toolexec runs external command-line tools on behalf of the hook.
package toolexec

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Runner runs an external program to completion.
type Runner interface {
	// Run executes name with args and blocks until it exits. A non-zero exit
	// is reported as an error wrapping *exec.ExitError.
	Run(ctx context.Context, name string, args ...string) error
}

// ExecRunner is the os/exec backed Runner. The child inherits the current
// environment and working directory; its output goes to Stdout and Stderr.
type ExecRunner struct {
	Stdout io.Writer
	Stderr io.Writer
}

// NewExecRunner returns a runner whose child processes write to the
// process's own standard streams.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{Stdout: os.Stdout, Stderr: os.Stderr}
}

// Run implements Runner. The program and its arguments are passed as an
// argument vector; no shell is involved.
func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("running %s: %w", name, err)
	}
	return nil
}

// ExitCode extracts the exit status from an error returned by Run. ok is false
// when the process never ran (e.g. the executable was not found).
func ExitCode(err error) (code int, ok bool) {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), true
	}
	return 0, false
}

// Format renders an argument vector as a single human-readable line.
func Format(name string, args ...string) string {
	return strings.Join(append([]string{name}, args...), " ")
}

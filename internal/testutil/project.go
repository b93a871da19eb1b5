package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// WriteProject creates a temporary project root and writes files into it.
// Keys are slash-separated paths relative to the root; a key ending in "/"
// creates a directory.
func WriteProject(t *testing.T, files map[string]string) string {
	t.Helper()

	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		if strings.HasSuffix(name, "/") {
			require.NoError(t, os.MkdirAll(path, 0o755))
			continue
		}
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return root
}

// StubAssembler writes an executable shell script that mimics the pioasm
// command line: it appends its arguments to a log file, one call per line,
// and writes a header to its last argument before exiting with exitCode.
// It returns the script path and the log path.
func StubAssembler(t *testing.T, exitCode int) (string, string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell stubs are not supported on windows")
	}

	dir := t.TempDir()
	logPath := filepath.Join(dir, "calls.log")
	script := "#!/bin/sh\n" +
		"echo \"$@\" >> '" + logPath + "'\n" +
		"for last in \"$@\"; do :; done\n" +
		"[ -d \"$(dirname \"$last\")\" ] && echo '// generated' > \"$last\"\n" +
		"exit " + strconv.Itoa(exitCode) + "\n"

	path := filepath.Join(dir, "pioasm")
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))
	return path, logPath
}

// StubCalls reads the call log written by StubAssembler.
func StubCalls(t *testing.T, logPath string) []string {
	t.Helper()
	data, err := os.ReadFile(logPath)
	if os.IsNotExist(err) {
		return nil
	}
	require.NoError(t, err)
	return strings.Split(strings.TrimRight(string(data), "\n"), "\n")
}

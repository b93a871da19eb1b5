package main

import (
	"bytes"
	"context"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/piohook/internal/cli"
	"github.com/vk/piohook/internal/testutil"
	"github.com/vk/piohook/internal/toolexec"
)

func TestRun_ShouldExit(t *testing.T) {
	// --- Arrange ---
	args := []string{"-h"}
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(context.Background(), out, args, &testutil.RecordingRunner{})

	// --- Assert ---
	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	out := &bytes.Buffer{}

	err := run(context.Background(), out, []string{"--this-is-not-a-valid-flag"}, &testutil.RecordingRunner{})

	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.Code)
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}

func TestRun_InvalidConfig(t *testing.T) {
	root := testutil.WriteProject(t, map[string]string{
		"piohook.hcl": "compile \"pio\" {\n  arguments {\n",
	})

	err := run(context.Background(), &bytes.Buffer{}, []string{root}, &testutil.RecordingRunner{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestRun_MissingSourceDir(t *testing.T) {
	root := testutil.WriteProject(t, map[string]string{"platformio.ini": ""})
	runner := &testutil.RecordingRunner{}

	err := run(context.Background(), &bytes.Buffer{}, []string{root}, runner)
	require.ErrorIs(t, err, fs.ErrNotExist)
	assert.Empty(t, runner.Calls())
}

func TestRun_EndToEndWithStubAssembler(t *testing.T) {
	root := testutil.WriteProject(t, map[string]string{
		"src/ws2812.pio": ".program ws2812",
		"src/main.c":     "#include \"ws2812.pio.h\"",
	})
	stub, callLog := testutil.StubAssembler(t, 0)
	out := &bytes.Buffer{}

	runner := &toolexec.ExecRunner{Stdout: out, Stderr: out}
	err := run(context.Background(), out, []string{"--assembler", stub, "--log-format", "json", root}, runner)
	require.NoError(t, err)

	dir := filepath.Join(root, "src")
	assert.Equal(t, []string{
		"-o c-header " + filepath.Join(dir, "ws2812.pio") + " " + filepath.Join(dir, "ws2812.pio.h"),
	}, testutil.StubCalls(t, callLog))
	assert.FileExists(t, filepath.Join(dir, "ws2812.pio.h"))
	assert.Contains(t, out.String(), `"msg":"Compiling PIO."`)
}

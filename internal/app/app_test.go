package app_test

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/piohook/internal/app"
	"github.com/vk/piohook/internal/hcl"
	"github.com/vk/piohook/internal/testutil"
)

func setupApp(t *testing.T, cfg app.Config, runner *testutil.RecordingRunner) (*app.App, *testutil.SafeBuffer) {
	t.Helper()

	logs := &testutil.SafeBuffer{}
	cfg.LogLevel = "debug"
	cfg.LogFormat = "text"
	a, err := app.NewApp(logs, &cfg, hcl.NewLoader(), runner)
	require.NoError(t, err)

	t.Cleanup(func() {
		if os.Getenv("PIOHOOK_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logs.String())
		}
	})
	return a, logs
}

func TestNewConfig_RequiresProjectDir(t *testing.T) {
	_, err := app.NewConfig(app.Config{})
	require.Error(t, err)

	cfg, err := app.NewConfig(app.Config{ProjectDir: "/proj"})
	require.NoError(t, err)
	assert.Equal(t, "/proj", cfg.ProjectDir)
}

func TestRun_DefaultRule(t *testing.T) {
	root := testutil.WriteProject(t, map[string]string{"src/pwm.pio": ""})
	runner := &testutil.RecordingRunner{}
	a, logs := setupApp(t, app.Config{ProjectDir: root}, runner)

	results, err := a.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 1)

	dir := filepath.Join(root, "src")
	assert.Equal(t, [][]string{{"pioasm", "-o", "c-header", filepath.Join(dir, "pwm.pio"), filepath.Join(dir, "pwm.pio.h")}}, runner.Calls())
	testutil.AssertCompiled(t, logs.String(), filepath.Join(dir, "pwm.pio"))
	assert.Contains(t, logs.String(), "PIO compilation finished.")
	assert.Contains(t, logs.String(), "invocations=1")
}

func TestRun_AssemblerOverride(t *testing.T) {
	root := testutil.WriteProject(t, map[string]string{
		"src/pwm.pio": "",
		"piohook.hcl": "compile \"pio\" {}\ncompile \"lib\" {\n  source_dir = \"lib\"\n}\n",
		"lib/x.pio":   "",
	})
	runner := &testutil.RecordingRunner{}
	a, _ := setupApp(t, app.Config{ProjectDir: root, Assembler: "/opt/pioasm"}, runner)

	_, err := a.Run(context.Background())
	require.NoError(t, err)

	calls := runner.Calls()
	require.Len(t, calls, 2)
	for _, c := range calls {
		assert.Equal(t, "/opt/pioasm", c[0])
	}
}

func TestRun_MissingSourceDirAborts(t *testing.T) {
	root := testutil.WriteProject(t, map[string]string{"main.c": ""})
	runner := &testutil.RecordingRunner{}
	a, _ := setupApp(t, app.Config{ProjectDir: root}, runner)

	_, err := a.Run(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.Contains(t, err.Error(), `compile rule "pio"`)
	assert.Empty(t, runner.Calls())
}

func TestRun_DryRun(t *testing.T) {
	root := testutil.WriteProject(t, map[string]string{"src/pwm.pio": ""})
	runner := &testutil.RecordingRunner{}
	a, _ := setupApp(t, app.Config{ProjectDir: root, DryRun: true}, runner)

	results, err := a.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Len(t, results[0].Invocations, 1)
	assert.Empty(t, runner.Calls())
}

func TestNewApp_BadConfig(t *testing.T) {
	root := testutil.WriteProject(t, map[string]string{"piohook.hcl": "compile {"})

	_, err := app.NewApp(&testutil.SafeBuffer{}, &app.Config{ProjectDir: root}, hcl.NewLoader(), &testutil.RecordingRunner{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
}

func TestNewApp_JSONLogs(t *testing.T) {
	root := testutil.WriteProject(t, map[string]string{"src/pwm.pio": ""})
	logs := &testutil.SafeBuffer{}

	a, err := app.NewApp(logs, &app.Config{ProjectDir: root, LogFormat: "json", LogLevel: "info"}, hcl.NewLoader(), &testutil.RecordingRunner{})
	require.NoError(t, err)
	_, err = a.Run(context.Background())
	require.NoError(t, err)

	assert.Contains(t, logs.String(), `"msg":"Compiling PIO."`)
	assert.NotContains(t, logs.String(), "App.Run method started.", "debug lines are filtered at info level")
}

// Copyright (c) 2026 knutkj All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/knutkj/onenote-debug-add-in/src/cli"
	"github.com/knutkj/onenote-debug-add-in/src/logger"
)

const version = "0.0.0-testing"

// execute runs the CLI with the given arguments and a quiet console.
func execute(t *testing.T, args ...string) error {
	t.Helper()
	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	os.Args = append([]string{"addin-diag"}, args...)
	return cli.Execute(context.Background(), version, logger.NewQuietLogger())
}

// sidecarLines reads the sidecar log written for modulePath.
func sidecarLines(t *testing.T, modulePath string) []string {
	t.Helper()
	logPath := strings.TrimSuffix(modulePath, filepath.Ext(modulePath)) + ".log"
	content, err := os.ReadFile(logPath)
	require.NoError(t, err, "simulate should write the sidecar log")
	return strings.Split(strings.TrimSuffix(string(content), "\r\n"), "\r\n")
}

func TestExecute_NoArgs(t *testing.T) {
	// Bare invocation prints help and succeeds.
	assert.NoError(t, execute(t))
}

func TestSimulate_DefaultScenario(t *testing.T) {
	modulePath := filepath.Join(t.TempDir(), "plugin.dll")

	require.NoError(t, execute(t, "simulate", "--module", modulePath))

	lines := sidecarLines(t, modulePath)
	// attach + snapshot, 3 default thread pairs, registration pair, detach
	assert.Len(t, lines, 11)

	joined := strings.Join(lines, "\n")
	for _, tag := range []string{
		"DLL_PROCESS_ATTACH",
		"ProcessInfo",
		"DLL_THREAD_ATTACH",
		"DLL_THREAD_DETACH",
		"DllRegisterServer",
		"DLL_PROCESS_DETACH",
	} {
		assert.Contains(t, joined, "["+tag+"]", "missing lifecycle tag %s", tag)
	}
}

func TestSimulate_ThreadsFlag(t *testing.T) {
	modulePath := filepath.Join(t.TempDir(), "plugin.dll")

	require.NoError(t, execute(t, "simulate", "-m", modulePath, "-t", "5"))

	lines := sidecarLines(t, modulePath)
	// attach + snapshot, 5 thread pairs, registration pair, detach
	assert.Len(t, lines, 15)
}

func TestSimulate_ConfigScenario(t *testing.T) {
	dir := t.TempDir()
	modulePath := filepath.Join(dir, "plugin.dll")

	configPath := filepath.Join(dir, "scenario.yaml")
	scenario := "module: " + modulePath + "\n" +
		"threads: 1\n" +
		"register: false\n" +
		"messages:\n" +
		"  - tag: Harness\n" +
		"    message: Scenario marker\n"
	require.NoError(t, os.WriteFile(configPath, []byte(scenario), 0644))

	require.NoError(t, execute(t, "simulate", "--config", configPath))

	lines := sidecarLines(t, modulePath)
	// attach + snapshot, scenario message, 1 thread pair, detach
	assert.Len(t, lines, 6)

	joined := strings.Join(lines, "\n")
	assert.Contains(t, joined, "[Harness]: Scenario marker")
	assert.NotContains(t, joined, "DllRegisterServer", "register: false must skip the pair")
}

func TestShow(t *testing.T) {
	modulePath := filepath.Join(t.TempDir(), "plugin.dll")
	require.NoError(t, execute(t, "simulate", "-m", modulePath, "-t", "1"))

	logPath := strings.TrimSuffix(modulePath, ".dll") + ".log"

	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	t.Run("plain", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.NewCLILogger()
		log.SetOutput(&buf)

		os.Args = []string{"addin-diag", "show", logPath}
		require.NoError(t, cli.Execute(context.Background(), version, log))

		assert.Contains(t, buf.String(), "[DLL_PROCESS_ATTACH]: Add-in loaded into process")
	})

	t.Run("table", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.NewCLILogger()
		log.SetOutput(&buf)

		os.Args = []string{"addin-diag", "show", logPath, "--table"}
		require.NoError(t, cli.Execute(context.Background(), version, log))

		assert.Contains(t, buf.String(), "Timestamp")
		assert.Contains(t, buf.String(), "DLL_PROCESS_DETACH")
	})
}

func TestShow_MissingFile(t *testing.T) {
	err := execute(t, "show", filepath.Join(t.TempDir(), "no-such.log"))
	assert.Error(t, err)
}

// Copyright (c) 2026 knutkj All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package addin_test

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/knutkj/onenote-debug-add-in/src/addin"
)

// TestRegisterServer verifies the start/complete pair lands in the sidecar
// log and the entry point reports success.
func TestRegisterServer(t *testing.T) {
	modulePath := filepath.Join(t.TempDir(), "plugin.dll")
	a := addin.New(modulePath)

	require.NoError(t, a.RegisterServer())

	content, err := os.ReadFile(filepath.Join(filepath.Dir(modulePath), "plugin.log"))
	require.NoError(t, err)

	shape := regexp.MustCompile(
		`^\[.*\]: \[DllRegisterServer\]: Registration started\r\n` +
			`\[.*\]: \[DllRegisterServer\]: Registration completed successfully\r\n$`)
	assert.True(t, shape.Match(content), "unexpected registration pair: %q", content)
}

// TestRegisterServerFailSilent verifies registration still succeeds when
// the diagnostic log is unavailable.
func TestRegisterServerFailSilent(t *testing.T) {
	a := addin.New(filepath.Join(t.TempDir(), "missing", "plugin.dll"))
	assert.NoError(t, a.RegisterServer())
}

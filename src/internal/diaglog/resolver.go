// Copyright (c) 2026 knutkj All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package diaglog

import "strings"

const (
	// logExt is the sidecar extension that replaces the module's own.
	logExt = ".log"

	// maxPathLen bounds resolved log paths, mirroring the MAX_PATH limit
	// the add-in historically ran under on Windows hosts.
	maxPathLen = 260
)

// ResolveLogPath derives the sidecar log path for the module at modulePath.
//
// The final extension of the last path component is replaced with ".log";
// a component without an extension gets ".log" appended instead. Both "/"
// and "\" count as separators, so a dot inside a parent directory name is
// never mistaken for the extension dot and Windows-style module paths
// resolve identically on any platform.
//
// The result is a pure string transformation: no filesystem access, and the
// same module path always yields the same log path. Results longer than the
// bounded path length are truncated silently; callers get a best-effort
// path rather than an error.
func ResolveLogPath(modulePath string) string {
	base := modulePath
	sep := strings.LastIndexAny(modulePath, `/\`)
	if dot := strings.LastIndexByte(modulePath, '.'); dot > sep {
		base = modulePath[:dot]
	}
	return truncatePath(base + logExt)
}

// truncatePath enforces the bounded-path policy.
func truncatePath(p string) string {
	if len(p) > maxPathLen {
		return p[:maxPathLen]
	}
	return p
}

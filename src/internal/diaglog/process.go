// Copyright (c) 2026 knutkj All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package diaglog

import (
	"fmt"
	"os"
	"time"

	"github.com/knutkj/onenote-debug-add-in/src/internal/helper/posix"
)

// processInfoTag labels process-snapshot entries in the sidecar log.
const processInfoTag = "ProcessInfo"

// ProcessInfo is a snapshot of the hosting process identity: the executable
// base name, the process ID, and the full executable path. Snapshots are
// captured fresh for every entry and never cached across calls.
type ProcessInfo struct {
	Name string
	PID  int
	Path string
}

// captureProcessInfo snapshots the identity of the current process. The
// executable path comes from os.Executable, falling back to os.Args[0]
// when the runtime cannot resolve it.
func captureProcessInfo() ProcessInfo {
	path, err := os.Executable()
	if err != nil || path == "" {
		if len(os.Args) > 0 {
			path = os.Args[0]
		}
	}
	return ProcessInfo{
		Name: posix.Basename(path),
		PID:  os.Getpid(),
		Path: path,
	}
}

// entry renders the snapshot as a diagnostic entry under the ProcessInfo tag.
func (p ProcessInfo) entry(now time.Time) Entry {
	return Entry{
		Time:    now,
		Tag:     processInfoTag,
		Message: fmt.Sprintf("Process=%s PID=%d Path=%s", p.Name, p.PID, p.Path),
	}
}

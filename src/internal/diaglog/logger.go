// Copyright (c) 2026 knutkj All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package diaglog

import (
	"fmt"
	"os"
	"time"

	"github.com/knutkj/onenote-debug-add-in/src/internal/helper/gc"
)

// Logger appends diagnostic entries to the sidecar log file derived from
// the hosting module's path. It holds no open handle and no state between
// calls; every append is an independent open-write-close cycle, so nothing
// already written is lost when the process terminates abruptly.
//
// Logger is safe for concurrent use by multiple goroutines. Line atomicity
// rides on the operating system's append-mode write semantics; relative
// ordering of entries from concurrent callers is not guaranteed.
type Logger struct {
	modulePath string
	now        func() time.Time
}

// New creates a Logger for the module at modulePath. The path is the
// process-wide value captured once at attach time and passed in explicitly;
// the Logger never reads it from ambient state.
func New(modulePath string) *Logger {
	return NewWithClock(modulePath, nil)
}

// NewWithClock creates a Logger with an explicit clock. A nil now falls
// back to time.Now. Tests use it to pin entry timestamps.
func NewWithClock(modulePath string, now func() time.Time) *Logger {
	if now == nil {
		now = time.Now
	}
	return &Logger{modulePath: modulePath, now: now}
}

// Append writes one tagged diagnostic line to the sidecar log.
//
// Failures to open or write the file are absorbed here: the diagnostic path
// must never destabilize the hosting process, so the call is a silent no-op
// when the log file is unavailable for any reason.
func (l *Logger) Append(tag, message string) {
	_ = l.append(Entry{Time: l.now(), Tag: tag, Message: message})
}

// AppendProcessSnapshot writes one line identifying the hosting process:
// executable name, PID, and full path. The snapshot is captured fresh on
// every call. Failures are absorbed the same way Append absorbs them.
func (l *Logger) AppendProcessSnapshot() {
	_ = l.append(captureProcessInfo().entry(l.now()))
}

// append performs one open-write-close cycle against the resolved log path.
// The path is re-resolved on every call; the same module path always lands
// in the same sidecar file.
func (l *Logger) append(e Entry) error {
	f, err := os.OpenFile(ResolveLogPath(l.modulePath), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("diaglog: open log file: %w", err)
	}
	defer f.Close()

	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	e.render(buf)
	if _, err := f.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("diaglog: write entry: %w", err)
	}
	return nil
}

// Copyright (c) 2026 knutkj All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package addin

import (
	"github.com/knutkj/onenote-debug-add-in/src/internal/diaglog"
)

// Event identifies a lifecycle notification raised by the hosting process.
type Event int

const (
	// ProcessAttach fires when the module is loaded into a process.
	ProcessAttach Event = iota
	// ThreadAttach fires when the process creates a new thread.
	ThreadAttach
	// ThreadDetach fires when a thread exits cleanly.
	ThreadDetach
	// ProcessDetach fires when the module is unloaded from the process.
	ProcessDetach
)

// Tag returns the descriptive tag recorded for the event.
func (e Event) Tag() string {
	switch e {
	case ProcessAttach:
		return "DLL_PROCESS_ATTACH"
	case ThreadAttach:
		return "DLL_THREAD_ATTACH"
	case ThreadDetach:
		return "DLL_THREAD_DETACH"
	case ProcessDetach:
		return "DLL_PROCESS_DETACH"
	}
	return "DLL_UNKNOWN"
}

// String returns the same descriptive tag; Event values print as their tag.
func (e Event) String() string { return e.Tag() }

// message is the human-readable description logged for the event.
func (e Event) message() string {
	switch e {
	case ProcessAttach:
		return "Add-in loaded into process"
	case ThreadAttach:
		return "Thread attached"
	case ThreadDetach:
		return "Thread detached"
	case ProcessDetach:
		return "Add-in unloaded from process"
	}
	return "Unknown lifecycle event"
}

// Addin is the debug add-in's lifecycle handler. It is constructed once at
// process attach with the hosting module's path and records every
// notification it receives to the module's sidecar log.
//
// Addin is safe for concurrent use: thread attach and detach notifications
// arrive on whichever thread raised them.
type Addin struct {
	log *diaglog.Logger
}

// New creates the add-in surface for the module at modulePath.
func New(modulePath string) *Addin {
	return &Addin{log: diaglog.New(modulePath)}
}

// HandleEvent dispatches a lifecycle notification: the event is recorded
// and, on process attach, a snapshot of the hosting process identity is
// appended as well.
//
// The return value is what the add-in reports to its host, and it is
// always true: lifecycle handling succeeds whether or not the diagnostic
// write did.
func (a *Addin) HandleEvent(e Event) bool {
	a.log.Append(e.Tag(), e.message())
	if e == ProcessAttach {
		a.log.AppendProcessSnapshot()
	}
	return true
}

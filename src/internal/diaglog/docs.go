// Copyright (c) 2026 knutkj All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package diaglog implements the sidecar diagnostic log the add-in writes
// next to its own module file.
//
// The log location is derived from the hosting module path by swapping the
// final extension for ".log" (appending it when the module has no
// extension), so "plugin.dll" logs to "plugin.log" in the same directory.
// Each entry is one CRLF-terminated line:
//
//	[<YYYY-MM-DD HH:MM:SS.mmm>]: [<tag>]: <message>
//	[<YYYY-MM-DD HH:MM:SS.mmm>]: [ProcessInfo]: Process=<name> PID=<pid> Path=<path>
//
// Every append is an independent open-write-close cycle against the file in
// append mode. The Logger keeps no handle, no buffer, and no state between
// calls; whatever was already written survives an abrupt process exit.
//
// Writes are best effort. A diagnostic path must never destabilize the
// process hosting the add-in, so open and write failures are absorbed
// inside the package and the caller's lifecycle event proceeds untouched.
// There is no secondary error channel: this log is the last line of
// diagnostics.
package diaglog

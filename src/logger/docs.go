// Copyright (c) 2026 knutkj All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package logger provides the console logging used by the diagnostics
// harness CLI.
//
// This is deliberately separate from the sidecar diagnostic log the add-in
// itself writes: the harness talks to the person running it, the sidecar
// log talks to whoever debugs the add-in afterwards. The Logger interface
// keeps commands testable by letting tests capture or silence output.
package logger

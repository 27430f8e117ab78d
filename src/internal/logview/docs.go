// Copyright (c) 2026 knutkj All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package logview reads sidecar diagnostic logs back for display.
//
// The sidecar format is write-only from the add-in's point of view; this
// package is the harness-side companion that parses the CRLF-terminated
// entry lines and renders them for a person. Parsing is tolerant: the
// writer is best effort and a log may carry a partial line from an
// interrupted process, so anything that does not match the entry shape is
// skipped rather than reported as an error.
package logview

// Copyright (c) 2026 knutkj All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package addin is the lifecycle surface of the OneNote debug add-in.
//
// A hosting process raises four notifications against a loaded add-in:
// process attach, thread attach, thread detach, and process detach. It may
// also ask the add-in to register its component once. This package receives
// those notifications and records each one to the sidecar diagnostic log
// kept next to the add-in's own module file.
//
// An Addin is constructed once, at process attach, with the on-disk path of
// the hosting module. That single capture replaces the mutable module
// handle the add-in previously read from global state; the path is passed
// explicitly everywhere it is needed.
//
// Lifecycle handling always reports success to the host. Diagnostics are
// best effort and a failed log write must never block a load, a thread
// start, or an unload.
package addin

// Copyright (c) 2026 knutkj All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package gc provides pooled byte buffers for assembling diagnostic log lines.
//
// Every append to the sidecar log renders one short text line. Formatting
// those lines through a shared [bytebufferpool] keeps the per-entry garbage
// low even when lifecycle events arrive from many goroutines at once, which
// is exactly when thread attach/detach storms produce the most entries.
//
// The Buffer and Pool interfaces abstract the [bytebufferpool] types so the
// rest of the module never imports the library directly and tests can
// substitute their own implementations.
//
// Typical usage:
//
//	buf := gc.Default.Get()
//
//	defer func() {
//		buf.Reset()         // Reset the buffer to prevent data leaks
//		gc.Default.Put(buf) // Return the buffer to the pool for reuse
//	}()
//
//	buf.WriteString("[2026-01-02 15:04:05.000]: [TAG]: message\r\n")
//	file.Write(buf.Bytes())
//
// [bytebufferpool]: https://github.com/valyala/bytebufferpool
package gc

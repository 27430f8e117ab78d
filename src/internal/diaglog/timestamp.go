// Copyright (c) 2026 knutkj All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package diaglog

import "time"

// timestampLayout is the fixed entry timestamp layout: local wall clock,
// millisecond precision, sortable, no zone indicator.
const timestampLayout = "2006-01-02 15:04:05.000"

// formatTimestamp renders t in the fixed layout shared by every entry.
func formatTimestamp(t time.Time) string {
	return t.Format(timestampLayout)
}

// Copyright (c) 2026 knutkj All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package diaglog

import (
	"time"

	"github.com/knutkj/onenote-debug-add-in/src/internal/helper/gc"
)

// crlf terminates every rendered line, matching the sidecar format the
// add-in has always written.
const crlf = "\r\n"

// Entry is a single diagnostic record: a wall-clock timestamp, a short tag
// naming the lifecycle event or call site, and a free-text message. An
// entry is rendered once, appended, and discarded; it is never updated.
type Entry struct {
	Time    time.Time
	Tag     string
	Message string
}

// render writes the entry's line form into buf:
//
//	[<timestamp>]: [<tag>]: <message>\r\n
func (e Entry) render(buf gc.Buffer) {
	buf.WriteByte('[')
	buf.WriteString(formatTimestamp(e.Time))
	buf.WriteString("]: [")
	buf.WriteString(e.Tag)
	buf.WriteString("]: ")
	buf.WriteString(e.Message)
	buf.WriteString(crlf)
}

// String returns the rendered line, including the CRLF terminator.
func (e Entry) String() string {
	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	e.render(buf)
	return buf.String()
}

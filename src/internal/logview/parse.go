// Copyright (c) 2026 knutkj All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logview

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"
)

// entryLine captures the three parts of a sidecar entry:
// "[<timestamp>]: [<tag>]: <message>".
var entryLine = regexp.MustCompile(`^\[([^\]]+)\]: \[([^\]]+)\]: (.*)$`)

// Record is one parsed sidecar log line. The timestamp is kept as the
// verbatim text the writer produced; display has no reason to reinterpret
// a wall-clock string recorded by another process.
type Record struct {
	Timestamp string
	Tag       string
	Message   string
}

// Parse reads sidecar log content and returns the records it recognizes,
// in file order. Lines that do not match the entry shape, including a
// trailing partial line from an interrupted writer, are skipped.
func Parse(r io.Reader) ([]Record, error) {
	var records []Record

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		m := entryLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		records = append(records, Record{
			Timestamp: m[1],
			Tag:       m[2],
			Message:   m[3],
		})
	}
	if err := scanner.Err(); err != nil {
		return records, fmt.Errorf("logview: read log: %w", err)
	}

	return records, nil
}

// Copyright (c) 2026 knutkj All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logview

import (
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
)

// RenderTable renders parsed records as a formatted markdown table with
// one row per entry, in file order.
func RenderTable(records []Record) string {
	if len(records) == 0 {
		return "No log entries to display"
	}

	var buf strings.Builder
	table := tablewriter.NewTable(&buf,
		tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})),
		tablewriter.WithHeaderAutoFormat(tw.Off),
	)

	table.Header([]string{"#", "Timestamp", "Tag", "Message"})

	var rows [][]string
	for i, rec := range records {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			rec.Timestamp,
			rec.Tag,
			rec.Message,
		})
	}

	table.Bulk(rows)
	table.Render()
	return buf.String()
}

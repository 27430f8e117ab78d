// Copyright (c) 2026 knutkj All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/knutkj/onenote-debug-add-in/src/internal/logview"
	"github.com/knutkj/onenote-debug-add-in/src/logger"
)

func newShowCmd(log logger.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show LOG_FILE",
		Short: "Display a sidecar diagnostic log",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(log, args[0])
		},
	}

	cmd.Flags().BoolVar(&tableView, "table", false, "render entries as a markdown table")

	return cmd
}

// runShow parses the sidecar log at path and prints its entries, either as
// plain lines or as a markdown table.
func runShow(log logger.Logger, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("cli: open log file: %w", err)
	}
	defer f.Close()

	records, err := logview.Parse(f)
	if err != nil {
		return err
	}

	if tableView {
		log.Println(logview.RenderTable(records))
		return nil
	}

	for _, rec := range records {
		log.Printf("[%s]: [%s]: %s", rec.Timestamp, rec.Tag, rec.Message)
	}
	return nil
}

// Copyright (c) 2026 knutkj All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/knutkj/onenote-debug-add-in/src/internal/helper/posix"
	"github.com/knutkj/onenote-debug-add-in/src/logger"
)

var (
	configFile  string
	modulePath  string
	threadCount int
	tableView   bool
)

// Execute runs the addin-diag root command with the given context,
// version string, and console logger.
func Execute(ctx context.Context, version string, log logger.Logger) error {
	rootCmd := &cobra.Command{
		Use:           posix.GetExecutableName(),
		Short:         "OneNote debug add-in diagnostics harness",
		Version:       version,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newSimulateCmd(log), newShowCmd(log))

	return rootCmd.ExecuteContext(ctx)
}

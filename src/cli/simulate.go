// Copyright (c) 2026 knutkj All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"fmt"
	"os"
	"sync"

	"github.com/spf13/cobra"

	"github.com/knutkj/onenote-debug-add-in/src/addin"
	"github.com/knutkj/onenote-debug-add-in/src/internal/diaglog"
	"github.com/knutkj/onenote-debug-add-in/src/logger"
)

func newSimulateCmd(log logger.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Drive a full add-in lifecycle against the sidecar log",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulate(log)
		},
	}

	cmd.Flags().StringVarP(&configFile, "config", "c", "", "scenario config file (YAML)")
	cmd.Flags().StringVarP(&modulePath, "module", "m", "", "hosting module path (default: this executable)")
	cmd.Flags().IntVarP(&threadCount, "threads", "t", 0, "concurrent thread attach/detach pairs")

	return cmd
}

// runSimulate raises the lifecycle the way a hosting process would: attach
// with a process snapshot, any scenario messages, a concurrent thread
// storm, the registration pair, then detach.
func runSimulate(log logger.Logger) error {
	cfg, err := loadConfig(configFile)
	if err != nil {
		return err
	}
	if modulePath != "" {
		cfg.Module = modulePath
	}
	if threadCount > 0 {
		cfg.Threads = threadCount
	}
	if cfg.Module == "" {
		exe, err := os.Executable()
		if err != nil {
			return fmt.Errorf("cli: resolve module path: %w", err)
		}
		cfg.Module = exe
	}

	a := addin.New(cfg.Module)

	a.HandleEvent(addin.ProcessAttach)

	if len(cfg.Messages) > 0 {
		dl := diaglog.New(cfg.Module)
		for _, m := range cfg.Messages {
			dl.Append(m.Tag, m.Message)
		}
	}

	var wg sync.WaitGroup
	for i := 0; i < cfg.Threads; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			a.HandleEvent(addin.ThreadAttach)
			a.HandleEvent(addin.ThreadDetach)
		}()
	}
	wg.Wait()

	if cfg.register() {
		if err := a.RegisterServer(); err != nil {
			return err
		}
	}

	a.HandleEvent(addin.ProcessDetach)

	log.Printf("Lifecycle simulation complete: %s", diaglog.ResolveLogPath(cfg.Module))
	return nil
}

// Copyright (c) 2026 knutkj All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import (
	"io"
	"log"
	"os"
)

// Logger defines the interface for harness console output.
// It provides formatted and line-oriented printing plus output redirection.
type Logger interface {
	// Printf formats and prints a log message.
	Printf(format string, v ...any)
	// Println prints a log message with a newline.
	Println(v ...any)
	// SetOutput sets the output destination for the logger.
	SetOutput(w io.Writer)
}

// CLILogger implements Logger using the standard log package.
// It's designed for command-line interface output with human-readable formatting.
type CLILogger struct{ logger *log.Logger }

// NewCLILogger creates a new CLI logger with timestamps disabled.
// This is suitable for user-facing CLI output.
func NewCLILogger() *CLILogger {
	l := log.New(os.Stdout, "", 0)
	return &CLILogger{logger: l}
}

// Printf formats and prints a log message using fmt.Printf semantics.
func (c *CLILogger) Printf(format string, v ...any) { c.logger.Printf(format, v...) }

// Println prints a log message with a newline.
func (c *CLILogger) Println(v ...any) { c.logger.Println(v...) }

// SetOutput sets the output destination for the CLI logger.
func (c *CLILogger) SetOutput(w io.Writer) { c.logger.SetOutput(w) }

// QuietLogger implements Logger by discarding everything. Tests use it to
// run commands without console noise.
type QuietLogger struct{}

// NewQuietLogger creates a logger that drops all output.
func NewQuietLogger() *QuietLogger { return &QuietLogger{} }

// Printf discards the message.
func (*QuietLogger) Printf(format string, v ...any) {}

// Println discards the message.
func (*QuietLogger) Println(v ...any) {}

// SetOutput is a no-op; a QuietLogger has no destination.
func (*QuietLogger) SetOutput(w io.Writer) {}

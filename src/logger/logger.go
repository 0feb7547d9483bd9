// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import (
	"io"
	"log"
	"os"
)

// Logger defines the interface for logging operations.
// It provides methods for formatted output and warnings.
//
// Results of a run are not logged; they are written to the command's
// standard output. Logger carries diagnostics only.
type Logger interface {
	// Printf formats and prints a log message.
	Printf(format string, v ...any)
	// Println prints a log message with a newline.
	Println(v ...any)
	// Warnf formats and prints a message prefixed with "Warning: ".
	Warnf(format string, v ...any)
	// SetOutput sets the output destination for the logger.
	SetOutput(w io.Writer)
}

// CLILogger implements Logger using the standard log package.
// It's designed for command-line interface output with human-readable formatting.
//
// CLILogger is safe for concurrent use by multiple goroutines.
type CLILogger struct{ logger *log.Logger }

// NewCLILogger creates a new CLI logger writing to standard error with
// timestamps disabled, keeping standard output free for alias definitions.
func NewCLILogger() *CLILogger {
	l := log.New(os.Stderr, "", 0)
	return &CLILogger{logger: l}
}

// Printf formats and prints a log message using fmt.Printf semantics.
func (c *CLILogger) Printf(format string, v ...any) { c.logger.Printf(format, v...) }

// Println prints a log message with a newline.
func (c *CLILogger) Println(v ...any) { c.logger.Println(v...) }

// Warnf prints a warning using fmt.Printf semantics.
func (c *CLILogger) Warnf(format string, v ...any) { c.logger.Printf("Warning: "+format, v...) }

// SetOutput sets the output destination for the CLI logger.
// A nil writer discards output.
func (c *CLILogger) SetOutput(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	c.logger.SetOutput(w)
}

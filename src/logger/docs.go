// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package logger provides abstraction and implementation for logging operations.
// It defines the Logger interface and CLILogger, a human-readable implementation
// that writes diagnostics such as option warnings and fatal errors to standard
// error.
package logger

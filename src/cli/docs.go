// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package cli provides the command-line interface for synonym.
// It implements a Cobra-based root command that either prints the curated
// aliases for a target platform or derives an alias from a command and checks
// a shell profile for an existing declaration.
//
// Invalid -m and -t values do not stop a run: they are reported through the
// logger package as warnings and the default is used instead. Usage errors
// and file read failures are returned to the caller.
package cli

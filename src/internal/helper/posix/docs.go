// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package posix provides [POSIX]-compliant helper functions for cross-platform compatibility.
//
// Key functions:
//   - GetExecutableName: Returns the executable name without extension for CLI usage
//
// synonym prints its own name in usage lines, so a renamed or symlinked
// binary reports the name it was invoked as:
//
//	rootCmd := &cobra.Command{
//	    Use: posix.GetExecutableName() + " [flags] <command...>",
//	}
//
// Cross-platform behavior:
//
//   - Linux/macOS: "/usr/bin/synonym" → "synonym"
//   - Windows: "C:\bin\synonym.exe" → "synonym"
//   - Fallback: Empty args → "synonym"
//
// [POSIX]: https://grokipedia.com/page/POSIX
package posix

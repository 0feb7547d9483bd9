// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package posix

import (
	"os"
	"path/filepath"
	"strings"
)

// DefaultName is reported when the invocation name is unavailable.
const DefaultName = "synonym"

// GetExecutableName returns the executable name without extension, cross-platform compatible.
// It extracts the base name from os.Args[0] and removes the .exe suffix so
// usage strings read the same on every operating system.
func GetExecutableName() string {
	if len(os.Args) == 0 || os.Args[0] == "" {
		return DefaultName
	}

	name := filepath.Base(os.Args[0])

	// A foreign path (Windows separators on Unix or the reverse) survives
	// filepath.Base intact, so take the last component by hand.
	if strings.Contains(name, "\\") || (strings.Contains(name, "/") && !strings.Contains(name, string(filepath.Separator))) {
		parts := strings.FieldsFunc(name, func(r rune) bool {
			return r == '/' || r == '\\'
		})
		if len(parts) > 0 {
			name = parts[len(parts)-1]
		}
	}

	return strings.TrimSuffix(name, ".exe")
}

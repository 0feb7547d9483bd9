// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package alias derives short alias names from shell commands and checks
// shell profiles for existing declarations.
//
// An alias is built from the leading characters of each word of a command:
//
//	name, err := alias.Generate("list all files", alias.TakeFirst1) // "laf"
//
// A profile declares an alias on any line starting with "alias " followed by
// the name and an "=". [Exists] looks for such a line:
//
//	found, err := alias.Exists(name, ".profile")
//
// Neither function writes to disk.
package alias

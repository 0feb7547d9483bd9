// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package platform maps the build target to one of the operating system
// families synonym ships curated aliases for, and parses the names accepted
// by the -t flag.
package platform

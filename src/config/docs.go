// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package config loads optional synonym defaults from a JSON or YAML file
// named with --config. The format is picked from the file extension.
package config

// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package catalog holds the curated per-platform alias lists printed by
// synonym's popular-aliases mode.
//
// The lists live in aliases.yaml, which is embedded into the binary and
// decoded with [yaml.v3] on first use. Blocks render either as plain shell
// declarations ([WriteText]) or as a markdown table ([WriteTable]) built with
// [tablewriter].
//
// Example:
//
//	c, err := catalog.Load()
//	if err != nil {
//		return err
//	}
//	return catalog.WriteText(os.Stdout, c.Block(platform.FreeBSD))
//
// [yaml.v3]: https://pkg.go.dev/gopkg.in/yaml.v3
// [tablewriter]: https://github.com/olekukonko/tablewriter
package catalog

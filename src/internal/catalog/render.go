// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package catalog

import (
	"fmt"
	"io"

	"github.com/H0llyW00dzZ/synonym/src/internal/helper/gc"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
)

// Definition formats an alias as a shell declaration, e.g. alias ll='ls -la'.
func Definition(name, command string) string {
	return fmt.Sprintf("alias %s='%s'", name, command)
}

// WriteText writes the block header followed by one alias declaration per
// line, ready to paste into a shell profile.
func WriteText(w io.Writer, b Block) error {
	buf := gc.Default.Get()
	defer gc.Release(buf)

	buf.WriteString(b.Header)
	buf.WriteByte('\n')
	for _, e := range b.Aliases {
		buf.WriteString(Definition(e.Name, e.Command))
		buf.WriteByte('\n')
	}

	_, err := buf.WriteTo(w)
	return err
}

// WriteTable writes the block header followed by a markdown table of the
// aliases. A block without aliases prints only its header.
func WriteTable(w io.Writer, b Block) error {
	buf := gc.Default.Get()
	defer gc.Release(buf)

	buf.WriteString(b.Header)
	buf.WriteByte('\n')

	if len(b.Aliases) > 0 {
		table := tablewriter.NewTable(buf,
			tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})),
		)
		table.Header([]string{"Alias", "Command"})

		rows := make([][]string, 0, len(b.Aliases))
		for _, e := range b.Aliases {
			rows = append(rows, []string{e.Name, e.Command})
		}

		if err := table.Bulk(rows); err != nil {
			return fmt.Errorf("building alias table: %w", err)
		}
		if err := table.Render(); err != nil {
			return fmt.Errorf("rendering alias table: %w", err)
		}
	}

	_, err := buf.WriteTo(w)
	return err
}

// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package catalog

import (
	"bytes"
	"strings"
	"testing"

	"github.com/H0llyW00dzZ/synonym/src/internal/platform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmbedded(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	again, err := Load()
	require.NoError(t, err)
	assert.Same(t, c, again, "embedded catalog should be decoded once")

	tests := []struct {
		platform platform.Platform
		header   string
		count    int
	}{
		{platform.Linux, "# Popular aliases people use:", 10},
		{platform.MacOS, "# macOS-specific aliases:", 5},
		{platform.FreeBSD, "# FreeBSD-specific aliases:", 3},
		{platform.OpenBSD, "# OpenBSD-specific aliases:", 3},
		{platform.Solaris, "# Solaris-specific aliases:", 3},
		{platform.AIX, "# AIX-specific aliases:", 3},
		{platform.HPUX, "# HP-UX-specific aliases:", 2},
		{platform.Other, "# No specific aliases for this platform.", 0},
	}

	for _, tt := range tests {
		t.Run(tt.platform.String(), func(t *testing.T) {
			b := c.Block(tt.platform)
			assert.Equal(t, tt.header, b.Header)
			assert.Len(t, b.Aliases, tt.count)
		})
	}
}

func TestBlockFallsBackToOther(t *testing.T) {
	c, err := Parse([]byte(`
platforms:
  - name: aix
    header: "# aix"
    aliases:
      - { name: a, command: "b" }
  - name: other
    header: "# none"
`))
	require.NoError(t, err)

	assert.Equal(t, "# aix", c.Block(platform.AIX).Header)
	assert.Equal(t, "# none", c.Block(platform.Linux).Header)
	assert.Empty(t, c.Block(platform.Linux).Aliases)
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"malformed yaml", "platforms: [\n"},
		{"unknown platform", "platforms:\n  - {name: beos, header: '# x'}\n  - {name: other, header: '# y'}\n"},
		{"duplicate block", "platforms:\n  - {name: aix, header: '# x'}\n  - {name: aix, header: '# x'}\n  - {name: other, header: '# y'}\n"},
		{"missing header", "platforms:\n  - {name: aix}\n  - {name: other, header: '# y'}\n"},
		{"incomplete entry", "platforms:\n  - name: aix\n    header: '# x'\n    aliases: [{name: a}]\n  - {name: other, header: '# y'}\n"},
		{"missing other", "platforms:\n  - {name: aix, header: '# x'}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			assert.ErrorIs(t, err, ErrInvalidCatalog)
		})
	}
}

func TestWriteText(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, c.Block(platform.FreeBSD)))

	expected := "# FreeBSD-specific aliases:\n" +
		"alias pkginstall='sudo pkg install'\n" +
		"alias portsup='sudo portsnap fetch update'\n" +
		"alias fstat='fstat | grep $USER'\n"
	assert.Equal(t, expected, buf.String())
}

func TestWriteTextLinuxOrder(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, c.Block(platform.Linux)))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 11)
	assert.Equal(t, "alias ll='ls -la'", lines[1])
	assert.Equal(t, "alias mv='mv -i'", lines[10])
}

func TestWriteTable(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, c.Block(platform.AIX)))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "# AIX-specific aliases:\n"))
	assert.Contains(t, strings.ToUpper(out), "ALIAS")
	assert.Contains(t, strings.ToUpper(out), "COMMAND")
	for _, want := range []string{"lsdev", "lsdev -Cc adapter", "lscpu", "lsattr -El proc0", "errpt", "errpt -a"} {
		assert.Contains(t, out, want)
	}
	assert.Contains(t, out, "|")
}

func TestWriteTableHeaderOnly(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, c.Block(platform.Other)))
	assert.Equal(t, "# No specific aliases for this platform.\n", buf.String())
}

func TestDefinition(t *testing.T) {
	assert.Equal(t, "alias laf='list all files'", Definition("laf", "list all files"))
}

// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package alias_test

import (
	"strings"
	"testing"

	"github.com/H0llyW00dzZ/synonym/src/internal/alias"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	tests := []struct {
		name     string
		command  string
		method   alias.Method
		expected string
	}{
		{"first letter", "list all files", alias.TakeFirst1, "laf"},
		{"first two letters", "list all files", alias.TakeFirst2, "lialfi"},
		{"first three letters", "list all files", alias.TakeFirst3, "lisallfil"},
		{"short words", "ls -l a", alias.TakeFirst3, "ls-la"},
		{"upper case folded", "Git Status", alias.TakeFirst2, "gist"},
		{"collapses whitespace", "  git \t  log\n --oneline  ", alias.TakeFirst1, "gl-"},
		{"punctuation kept", "./run.sh --fast", alias.TakeFirst2, "./--"},
		{"single word", "htop", alias.TakeFirst3, "hto"},
		{"multibyte runes", "Über Ärger", alias.TakeFirst1, "üä"},
		{"invalid method acts as first letter", "list all files", alias.Method(9), "laf"},
		{"empty", "", alias.TakeFirst2, ""},
		{"only whitespace", " \t\n ", alias.TakeFirst1, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := alias.Generate(tt.command, tt.method)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestGenerateLengthProperty(t *testing.T) {
	commands := []string{
		"list all files",
		"docker compose up -d --build",
		"a bb ccc dddd",
		"kubectl get pods -n kube-system",
		"x",
	}

	for _, cmd := range commands {
		for _, m := range []alias.Method{alias.TakeFirst1, alias.TakeFirst2, alias.TakeFirst3} {
			want := 0
			for _, w := range strings.Fields(cmd) {
				want += min(int(m), len(w))
			}

			got, err := alias.Generate(cmd, m)
			require.NoError(t, err)
			assert.Len(t, got, want, "command %q method %d", cmd, m)
		}
	}
}

func TestGenerateCaseInsensitive(t *testing.T) {
	for _, cmd := range []string{"list all files", "Make Install", "grep -R TODO ."} {
		for _, m := range []alias.Method{alias.TakeFirst1, alias.TakeFirst2, alias.TakeFirst3} {
			lower, err := alias.Generate(cmd, m)
			require.NoError(t, err)
			upper, err := alias.Generate(strings.ToUpper(cmd), m)
			require.NoError(t, err)
			assert.Equal(t, lower, upper)
		}
	}
}

func TestGenerateInputTooLong(t *testing.T) {
	atLimit := strings.Repeat("a", alias.MaxCommandLength)
	got, err := alias.Generate(atLimit, alias.TakeFirst1)
	require.NoError(t, err)
	assert.Equal(t, "a", got)

	_, err = alias.Generate(atLimit+"b", alias.TakeFirst1)
	assert.ErrorIs(t, err, alias.ErrInputTooLong)
}

func TestParseMethod(t *testing.T) {
	tests := []struct {
		input    string
		expected alias.Method
		wantErr  bool
	}{
		{"1", alias.TakeFirst1, false},
		{"2", alias.TakeFirst2, false},
		{"3", alias.TakeFirst3, false},
		{"0", alias.DefaultMethod, true},
		{"4", alias.DefaultMethod, true},
		{"9", alias.DefaultMethod, true},
		{"-1", alias.DefaultMethod, true},
		{"two", alias.DefaultMethod, true},
		{"", alias.DefaultMethod, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			m, err := alias.ParseMethod(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, alias.ErrInvalidMethod)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expected, m)
		})
	}
}

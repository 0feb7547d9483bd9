// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package alias

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/H0llyW00dzZ/synonym/src/internal/helper/gc"
)

// MaxCommandLength is the longest command, in bytes, that [Generate] accepts.
const MaxCommandLength = 4096

var (
	// ErrInputTooLong is returned by [Generate] for commands over [MaxCommandLength].
	ErrInputTooLong = errors.New("command exceeds maximum length")
	// ErrInvalidMethod is returned by [ParseMethod] for anything but 1, 2 or 3.
	ErrInvalidMethod = errors.New("invalid alias method")
)

// Method is the number of leading characters taken from each word.
type Method int

const (
	TakeFirst1 Method = iota + 1
	TakeFirst2
	TakeFirst3
)

// DefaultMethod is used when no valid method was requested.
const DefaultMethod = TakeFirst1

// ParseMethod parses the value of the -m flag.
func ParseMethod(s string) (Method, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return DefaultMethod, fmt.Errorf("%w: %q", ErrInvalidMethod, s)
	}
	m := Method(n)
	if !m.Valid() {
		return DefaultMethod, fmt.Errorf("%w: %d", ErrInvalidMethod, n)
	}
	return m, nil
}

// Valid reports whether m is one of the defined methods.
func (m Method) Valid() bool { return m >= TakeFirst1 && m <= TakeFirst3 }

// chars returns how many characters m takes per word.
func (m Method) chars() int {
	if !m.Valid() {
		return int(DefaultMethod)
	}
	return int(m)
}

// Generate derives an alias from command by joining the first characters of
// each whitespace-separated word, lower-cased.
//
// For example, "list all files" yields "laf" with [TakeFirst1] and "lialfi"
// with [TakeFirst2]. A command with no words yields "".
//
// Characters are runes; lower-casing uses Unicode simple case mapping and is
// not locale dependent. Non-letters are copied as-is.
func Generate(command string, method Method) (string, error) {
	if len(command) > MaxCommandLength {
		return "", fmt.Errorf("%w: %d bytes (limit %d)", ErrInputTooLong, len(command), MaxCommandLength)
	}

	buf := gc.Default.Get()
	defer gc.Release(buf)

	var enc [utf8.UTFMax]byte
	k := method.chars()
	for _, word := range strings.Fields(command) {
		taken := 0
		for _, r := range word {
			if taken == k {
				break
			}
			n := utf8.EncodeRune(enc[:], unicode.ToLower(r))
			buf.Write(enc[:n])
			taken++
		}
	}

	return buf.String(), nil
}

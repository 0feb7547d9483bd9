// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package alias

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"iter"
	"os"
	"strings"
)

// MaxLineLength is the longest alias file line, in bytes, that is inspected.
// Longer lines are skipped entirely and can never match.
const MaxLineLength = 4096

// declPrefix starts every alias declaration line.
const declPrefix = "alias "

// ErrAliasFileRead wraps any failure to read an existing alias file.
// A missing file is not an error.
var ErrAliasFileRead = errors.New("cannot read alias file")

// Lines returns a lazy sequence over the lines of r without their line
// terminators. Lines longer than [MaxLineLength] are dropped. A read error is
// yielded once with an empty line and ends the sequence.
func Lines(r io.Reader) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		// room for a full-length line plus CRLF
		br := bufio.NewReaderSize(r, MaxLineLength+2)
		overflow := false
		for {
			chunk, isPrefix, err := br.ReadLine()
			if err != nil {
				if !errors.Is(err, io.EOF) {
					yield("", err)
				}
				return
			}

			switch {
			case isPrefix:
				overflow = true
			case overflow:
				// tail of an overlong line
				overflow = false
			case len(chunk) > MaxLineLength:
				// dropped
			default:
				if !yield(string(chunk), nil) {
					return
				}
			}
		}
	}
}

// declaredName extracts the alias name from an "alias name=value" line.
func declaredName(line string) (string, bool) {
	rest, ok := strings.CutPrefix(line, declPrefix)
	if !ok {
		return "", false
	}
	name, _, found := strings.Cut(rest, "=")
	return name, found
}

// ExistsIn reports whether r declares an alias called name. Names are
// compared verbatim and scanning stops at the first match.
func ExistsIn(name string, r io.Reader) (bool, error) {
	for line, err := range Lines(r) {
		if err != nil {
			return false, err
		}
		if declared, ok := declaredName(line); ok && declared == name {
			return true, nil
		}
	}
	return false, nil
}

// Exists reports whether the file at path declares an alias called name.
//
// A missing file reports false with no error. Any other failure to open or
// read the file wraps [ErrAliasFileRead].
func Exists(name, path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("%w: %w", ErrAliasFileRead, err)
	}
	defer f.Close()

	found, err := ExistsIn(name, f)
	if err != nil {
		return false, fmt.Errorf("%w: %s: %w", ErrAliasFileRead, path, err)
	}
	return found, nil
}

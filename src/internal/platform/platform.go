// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package platform

import (
	"errors"
	"fmt"
	"runtime"
)

// Platform identifies an operating system family that has its own alias set.
type Platform int

const (
	Linux Platform = iota
	MacOS
	FreeBSD
	OpenBSD
	Solaris
	AIX
	HPUX
	Other
)

// ErrUnknownPlatform is returned by [Parse] for names outside [Names].
var ErrUnknownPlatform = errors.New("unknown target platform")

var names = [...]string{
	Linux:   "linux",
	MacOS:   "macos",
	FreeBSD: "freebsd",
	OpenBSD: "openbsd",
	Solaris: "solaris",
	AIX:     "aix",
	HPUX:    "hpux",
	Other:   "other",
}

// String returns the lower-case name used by the -t flag.
func (p Platform) String() string {
	if p < Linux || p > Other {
		return names[Other]
	}
	return names[p]
}

// Names returns the target names accepted by [Parse], in declaration order.
func Names() []string {
	return append([]string(nil), names[:Other]...)
}

// Parse resolves a target name such as "freebsd".
// Matching is exact; "other" is not a selectable target.
func Parse(name string) (Platform, error) {
	for p := Linux; p < Other; p++ {
		if names[p] == name {
			return p, nil
		}
	}
	return Other, fmt.Errorf("%w: %q", ErrUnknownPlatform, name)
}

// Detect returns the platform the binary was built for.
//
// Go has no HP-UX port, so [HPUX] is never detected and can only be chosen
// explicitly.
func Detect() Platform { return fromGOOS(runtime.GOOS) }

func fromGOOS(goos string) Platform {
	switch goos {
	case "linux", "android":
		return Linux
	case "darwin", "ios":
		return MacOS
	case "freebsd":
		return FreeBSD
	case "openbsd":
		return OpenBSD
	case "solaris", "illumos":
		return Solaris
	case "aix":
		return AIX
	default:
		return Other
	}
}

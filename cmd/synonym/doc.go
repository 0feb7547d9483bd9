// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
// Use of this source code is governed by a BSD 3-Clause
// license that can be found in the LICENSE file.

// synonym derives a short shell alias from a command and checks whether a
// shell profile already declares it.
//
// # Installation
//
// Install with Go 1.25.5 or later:
//
//	go install github.com/H0llyW00dzZ/synonym/cmd/synonym@latest
//
// # Usage
//
//	synonym [-m method] [-f file] [-p] [-h] [-t target] <command...>
//
// # Flags
//
//	-m, --method   Alias method: 1, 2 or 3 letters per word (default 1)
//	-f, --file     File to check for existing aliases (default .profile)
//	-p, --popular  Print popular aliases for the target platform
//	-t, --target   linux, macos, freebsd, openbsd, solaris, aix or hpux
//	    --table    Print popular aliases as a markdown table
//	    --config   JSON or YAML file with default method, file and target
//	-h, --help     Show help
//
// Invalid -m or -t values print a warning and fall back to the default.
//
// # Examples
//
// Suggest an alias:
//
//	$ synonym "list all files"
//	alias laf='list all files'
//
// Use two letters per word and check ~/.bashrc:
//
//	$ synonym -m 2 -f ~/.bashrc list all files
//	alias lialfi='list all files'
//
// An alias that is already declared is reported instead:
//
//	$ synonym -f ~/.bashrc git status
//	# Alias 'gs' already exists in '/home/me/.bashrc'
//
// Print the FreeBSD aliases:
//
//	$ synonym -p -t freebsd
//	# FreeBSD-specific aliases:
//	alias pkginstall='sudo pkg install'
//	alias portsup='sudo portsnap fetch update'
//	alias fstat='fstat | grep $USER'
//
// # Exit Status
//
// 0 on success, help and listings; 1 when no command is given, a flag is
// missing its argument, the command is too long, or a file cannot be read.
package main

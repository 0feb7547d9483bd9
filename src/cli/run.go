// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/H0llyW00dzZ/synonym/src/config"
	"github.com/H0llyW00dzZ/synonym/src/internal/alias"
	"github.com/H0llyW00dzZ/synonym/src/internal/catalog"
	"github.com/H0llyW00dzZ/synonym/src/internal/platform"
	"github.com/H0llyW00dzZ/synonym/src/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// settings are the resolved values a terminal action runs with.
type settings struct {
	method alias.Method
	file   string
	target platform.Platform
}

// run dispatches to the popular alias listing or to alias generation.
// Help and version are handled by cobra before run is reached.
func run(cmd *cobra.Command, args []string, opts *options, log logger.Logger) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}

	s := resolve(cmd.Flags(), opts, cfg, log)

	if opts.popular {
		return printPopular(cmd.OutOrStdout(), s.target, opts.table)
	}

	command := strings.Join(args, " ")
	if strings.TrimSpace(command) == "" {
		fmt.Fprintf(cmd.ErrOrStderr(), "Usage: %s\n", cmd.UseLine())
		return ErrMissingCommand
	}

	return suggest(cmd.OutOrStdout(), command, s)
}

// resolve applies flag, then config file, then built-in defaults.
// Invalid values are reported as warnings and replaced by the default.
func resolve(flags *pflag.FlagSet, opts *options, cfg *config.Config, log logger.Logger) settings {
	s := settings{
		method: alias.DefaultMethod,
		file:   opts.file,
		target: platform.Detect(),
	}

	switch {
	case flags.Changed("method"):
		m, err := alias.ParseMethod(opts.method)
		if err != nil {
			log.Warnf("%v. Defaulting to first letter.", err)
		}
		s.method = m
	case cfg.Method != 0:
		if m := alias.Method(cfg.Method); m.Valid() {
			s.method = m
		} else {
			log.Warnf("%v: %d in config. Defaulting to first letter.", alias.ErrInvalidMethod, cfg.Method)
		}
	}

	if !flags.Changed("file") && cfg.File != "" {
		s.file = cfg.File
	}

	target := cfg.Target
	if flags.Changed("target") {
		target = opts.target
	}
	if flags.Changed("target") || target != "" {
		p, err := platform.Parse(target)
		if err != nil {
			log.Warnf("%v. Defaulting to current platform (%s).", err, s.target)
		} else {
			s.target = p
		}
	}

	return s
}

func printPopular(w io.Writer, target platform.Platform, table bool) error {
	c, err := catalog.Load()
	if err != nil {
		return err
	}

	block := c.Block(target)
	if table {
		return catalog.WriteTable(w, block)
	}
	return catalog.WriteText(w, block)
}

// suggest generates an alias for command and reports whether s.file already
// declares it. Nothing is written unless both steps succeed.
func suggest(w io.Writer, command string, s settings) error {
	name, err := alias.Generate(command, s.method)
	if err != nil {
		return err
	}

	exists, err := alias.Exists(name, s.file)
	if err != nil {
		return err
	}

	if exists {
		_, err = fmt.Fprintf(w, "# Alias '%s' already exists in '%s'\n", name, s.file)
	} else {
		_, err = fmt.Fprintln(w, catalog.Definition(name, command))
	}
	return err
}

// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/H0llyW00dzZ/synonym/src/internal/helper/posix"
	"github.com/H0llyW00dzZ/synonym/src/internal/platform"
	"github.com/H0llyW00dzZ/synonym/src/logger"
	"github.com/spf13/cobra"
)

// DefaultAliasFile is scanned when neither -f nor a config file names one.
const DefaultAliasFile = ".profile"

// ErrMissingCommand is returned when no command was given to alias.
var ErrMissingCommand = errors.New("no command provided")

// options holds the raw flag values of one invocation.
type options struct {
	method     string
	file       string
	popular    bool
	target     string
	table      bool
	configPath string
}

// Execute builds the root command and runs it against os.Args.
func Execute(ctx context.Context, version string, log logger.Logger) error {
	return NewRootCommand(version, log).ExecuteContext(ctx)
}

// NewRootCommand returns the synonym root command. Results go to the
// command's output stream; warnings go to log.
func NewRootCommand(version string, log logger.Logger) *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   posix.GetExecutableName() + " [flags] <command...>",
		Short: "Derive a short shell alias from a command",
		Long: `Derive a short alias from the words of a shell command and check whether
it is already declared in a shell profile.

Alias methods:
  1 : Use first letter of each word (default)
  2 : Use first two letters of each word
  3 : Use first three letters of each word

Flags are read up to the first word of the command, so the command may carry
its own options.`,
		Example: fmt.Sprintf(`  %[1]s "list all files"
  %[1]s -m 2 -f ~/.bashrc git status --short
  %[1]s -p -t freebsd`, posix.GetExecutableName()),
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, opts, log)
		},
	}

	flags := rootCmd.Flags()
	flags.SetInterspersed(false)
	flags.StringVarP(&opts.method, "method", "m", "1", "alias generation method: 1, 2 or 3 letters per word")
	flags.StringVarP(&opts.file, "file", "f", DefaultAliasFile, "file to check for existing aliases")
	flags.BoolVarP(&opts.popular, "popular", "p", false, "display a list of popular aliases")
	flags.StringVarP(&opts.target, "target", "t", "", "target OS for popular aliases ("+strings.Join(platform.Names(), ", ")+") (default: current platform)")
	flags.BoolVar(&opts.table, "table", false, "display popular aliases as a markdown table")
	flags.StringVar(&opts.configPath, "config", "", "JSON or YAML file with default method, file and target")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		fmt.Fprintf(cmd.ErrOrStderr(), "Usage: %s\n", cmd.UseLine())
		return err
	})

	return rootCmd
}

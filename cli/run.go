// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/latexformula/latexformula/base/logx"
)

// Run runs an app with the given options, configuration struct,
// and commands. It configures the configuration struct with [Config]
// from [os.Args], and then runs the resulting command.
// If there is an error, it is returned, and additionally
// printed, with the program exited, if [Options.Fatal] is set.
func Run[T any](opts *Options, cfg T, cmds ...*Cmd[T]) error {
	err := RunArgs(opts, cfg, os.Args[1:], cmds...)
	if err != nil && opts.Fatal {
		logx.PrintlnError(err)
		os.Exit(1)
	}
	return err
}

// RunArgs is [Run] with the given command line arguments,
// which must not include the program name.
func RunArgs[T any](opts *Options, cfg T, args []string, cmds ...*Cmd[T]) error {
	cmd, err := Config(opts, cfg, args, cmds...)
	if errors.Is(err, ErrHelp) || cmd == "help" {
		fmt.Fprint(os.Stderr, Usage(opts, cfg, cmd, cmds...))
		return nil
	}
	if err != nil {
		return fmt.Errorf("error configuring app: %w", err)
	}
	return RunCmd(opts, cfg, cmd, cmds...)
}

// RunCmd runs the command with the given name using the given options,
// configuration information, and available commands. If the given
// command name is "", it runs the root command.
func RunCmd[T any](opts *Options, cfg T, cmd string, cmds ...*Cmd[T]) error {
	c := findCmd(cmds, cmd)
	if cmd == "" {
		c = rootCmd(cmds)
	}
	if c == nil {
		fmt.Fprint(os.Stderr, Usage(opts, cfg, cmd, cmds...))
		return fmt.Errorf("command %q not found", cmd)
	}
	return c.Func(cfg)
}

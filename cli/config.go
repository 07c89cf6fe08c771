// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"strings"
)

// Config sets the given config object from, in order of increasing
// precedence: its `default:` struct tags, the config files named by
// [Options.DefaultFiles] and by the Includes of the config object,
// and the given command line arguments. It returns the name of the
// command to run: the first argument if it names one of the given
// commands, and otherwise the root command.
func Config[T any](opts *Options, cfg T, args []string, cmds ...*Cmd[T]) (string, error) {
	SetFromDefaults(cfg)

	cmd := ""
	if rc := rootCmd(cmds); rc != nil {
		cmd = rc.Name
	}
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		if args[0] == "help" {
			return "help", nil
		}
		if c := findCmd(cmds, args[0]); c != nil {
			cmd = c.Name
			args = args[1:]
		}
	}

	fields := AddFields(cfg, cmd)
	// flags are applied twice: first to get any config files,
	// and then again to override the config files
	if _, err := SetFromArgs(opts, fields, args); err != nil {
		return cmd, err
	}
	files, err := configFiles(opts, cfg)
	if err != nil {
		return cmd, err
	}
	if err := OpenFiles(cfg, files...); err != nil {
		return cmd, fmt.Errorf("error opening config files: %w", err)
	}
	pos, err := SetFromArgs(opts, fields, args)
	if err != nil {
		return cmd, err
	}
	return cmd, SetPosArgs(fields, pos)
}

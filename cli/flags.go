// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/latexformula/latexformula/base/reflectx"
)

// ErrHelp is returned by [SetFromArgs] when a help flag is given.
var ErrHelp = errors.New("help requested")

// SetFromArgs sets the given fields from the given command line
// arguments, and returns the positional (non-flag) arguments.
// Flags may start with one or two dashes, and their values can follow
// after an = or as the next argument; bool flags do not need a value.
// A lone "--" ends the flags. Unknown flags are an error, unless
// [Options.IgnoreUnknown] is set, in which case they are logged and
// skipped. As its kind is not known, an unknown flag given without
// an = takes the following argument as its value, unless that
// argument starts with a dash.
func SetFromArgs(opts *Options, fields []*Field, args []string) ([]string, error) {
	var pos []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			pos = append(pos, args[i+1:]...)
			break
		}
		if len(arg) < 2 || arg[0] != '-' {
			pos = append(pos, arg)
			continue
		}
		name := strings.TrimLeft(arg, "-")
		value, hasValue := "", false
		if before, after, ok := strings.Cut(name, "="); ok {
			name, value, hasValue = before, after, true
		}
		if name == "h" || name == "help" {
			return pos, ErrHelp
		}
		f := findField(fields, name)
		if f == nil {
			if opts.IgnoreUnknown {
				if !hasValue && i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
					i++
					value = args[i]
				}
				slog.Debug("ignoring unknown flag", "flag", arg, "value", value)
				continue
			}
			return pos, fmt.Errorf("unknown flag %q", arg)
		}
		if !hasValue {
			if f.IsBool() {
				value = "true"
			} else {
				if i+1 >= len(args) {
					return pos, fmt.Errorf("missing value for flag %q", arg)
				}
				i++
				value = args[i]
			}
		}
		if f.IsBool() {
			if _, err := strconv.ParseBool(value); err != nil {
				return pos, fmt.Errorf("invalid value %q for bool flag %q", value, arg)
			}
		}
		if err := reflectx.SetFromString(f.Value, value); err != nil {
			return pos, fmt.Errorf("error setting flag %q to %q: %w", arg, value, err)
		}
	}
	return pos, nil
}

// SetPosArgs sets the fields that take positional arguments from the
// given arguments, in order of position. It is an error to give more
// arguments than there are such fields; missing ones are left unchanged.
func SetPosArgs(fields []*Field, args []string) error {
	pfs := posArgFields(fields)
	if len(args) > len(pfs) {
		return fmt.Errorf("too many arguments: %q", args[len(pfs):])
	}
	for i, arg := range args {
		if err := reflectx.SetFromString(pfs[i].Value, arg); err != nil {
			return fmt.Errorf("error setting %s to %q: %w", pfs[i].Name, arg, err)
		}
	}
	return nil
}

// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/latexformula/latexformula/base/logx"
)

// Usage returns the usage string for the given command, based on
// the given options, config object and commands.
func Usage[T any](opts *Options, cfg T, cmd string, cmds ...*Cmd[T]) string {
	var b strings.Builder
	if cmd == "" || cmd == "help" {
		if rc := rootCmd(cmds); rc != nil {
			cmd = rc.Name
		}
	}
	if opts.AppAbout != "" {
		b.WriteString(opts.AppAbout + "\n\n")
	}
	fields := AddFields(cfg, cmd)
	b.WriteString("Usage:\n\t" + logx.CmdColor(opts.AppName+" [command] [flags]"))
	for _, f := range posArgFields(fields) {
		b.WriteString(" [" + strings.ToLower(f.Field.Name) + "]")
	}
	b.WriteString("\n\n")

	if len(cmds) > 0 {
		b.WriteString("Commands:\n")
		for _, c := range cmds {
			b.WriteString("\t" + logx.CmdColor(c.Name))
			if c.Root {
				b.WriteString(" (default)")
			}
			if c.Doc != "" {
				b.WriteString("\t" + c.Doc)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(fmt.Sprintf("Flags for %s:\n", logx.CmdColor(cmd)))
	b.WriteString("\t" + logx.CmdColor("-h, --help") + "\tshow this usage information\n")
	for _, f := range fields {
		if f.PosArg >= 0 {
			continue
		}
		var names []string
		for _, nm := range f.Names {
			if len(nm) == 1 {
				names = append(names, "-"+nm)
			} else {
				names = append(names, "--"+nm)
			}
		}
		b.WriteString("\t" + logx.CmdColor(strings.Join(names, ", ")))
		if !f.IsBool() {
			b.WriteString(" " + f.valueName())
		}
		if doc := f.Doc(); doc != "" {
			b.WriteString("\t" + doc)
		}
		if def, ok := f.Field.Tag.Lookup("default"); ok && f.Field.Type.Kind() != reflect.Struct {
			b.WriteString(fmt.Sprintf(" (default %s)", def))
		}
		b.WriteString("\n")
	}
	return b.String()
}

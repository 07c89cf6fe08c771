// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package exec

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/latexformula/latexformula/base/logx"
)

// Config contains the configuration information that
// controls the behavior of exec. It is passed to most
// high-level functions, and a default version of it
// can be easily constructed using [Major] or [Minor].
type Config struct {

	// Stdout is the writer to write the standard output of called commands to.
	// It can be set to nil to disable the writing of the standard output.
	Stdout io.Writer

	// Stderr is the writer to write the standard error of called commands to.
	// It can be set to nil to disable the writing of the standard error.
	Stderr io.Writer

	// Commands is the writer to write the string representation of the called commands to.
	// It can be set to nil to disable the writing of the string representations of the called commands.
	Commands io.Writer

	// Errors is the writer to write program errors to.
	// It can be set to nil to disable the writing of program errors.
	Errors io.Writer

	// NoExpand is whether to pass the command and its arguments on
	// as given, without expanding environment variables in them.
	// It should be set when they contain file paths.
	NoExpand bool

	// PrintOnly is whether to only print commands that would be run and
	// not actually run them. It can be used, for example, for safely testing
	// an app.
	PrintOnly bool

	// The directory to execute commands in. If it is unset,
	// commands are run in the current directory.
	Dir string

	// Env contains any additional environment variables specified.
	// The current environment variables will also be passed to the
	// command, but they will be overridden by any variables here
	// if there are conflicts.
	Env map[string]string
}

// Major returns the default [Config] object for a major command,
// based on [logx.UserLevel]. It should be used for commands that
// are central to an app's logic and are more important for the user
// to know about and be able to see the output of. It results in
// commands and output being printed with a [logx.UserLevel] of
// [slog.LevelInfo] or below, whereas [Minor] results in that when
// it is [slog.LevelDebug] or below. Standard output of the command
// is never sent to [os.Stdout], which carries the resulting document.
func Major() *Config {
	if logx.UserLevel <= slog.LevelInfo {
		return &Config{
			Stdout:   os.Stderr,
			Stderr:   os.Stderr,
			Commands: os.Stderr,
			Errors:   os.Stderr,
			Env:      map[string]string{},
		}
	}
	return &Config{
		Errors: os.Stderr,
		Env:    map[string]string{},
	}
}

// Minor returns the default [Config] object for a minor command,
// based on [logx.UserLevel]. It should be used for commands that
// support an app behind the scenes and are less important for the
// user to know about and be able to see the output of.
func Minor() *Config {
	if logx.UserLevel <= slog.LevelDebug {
		return &Config{
			Stdout:   os.Stderr,
			Stderr:   os.Stderr,
			Commands: os.Stderr,
			Errors:   os.Stderr,
			Env:      map[string]string{},
		}
	}
	return &Config{
		Errors: os.Stderr,
		Env:    map[string]string{},
	}
}

// Silent returns a [Config] that prints nothing.
func Silent() *Config {
	return &Config{
		Env: map[string]string{},
	}
}

// SetStdout sets the standard output.
func (c *Config) SetStdout(w io.Writer) *Config {
	c.Stdout = w
	return c
}

// SetStderr sets the standard error.
func (c *Config) SetStderr(w io.Writer) *Config {
	c.Stderr = w
	return c
}

// SetCommands sets the writer that echoed commands go to.
func (c *Config) SetCommands(w io.Writer) *Config {
	c.Commands = w
	return c
}

// SetNoExpand sets whether to leave environment variables unexpanded.
func (c *Config) SetNoExpand(noExpand bool) *Config {
	c.NoExpand = noExpand
	return c
}

// SetPrintOnly sets whether to only print commands without running them.
func (c *Config) SetPrintOnly(printOnly bool) *Config {
	c.PrintOnly = printOnly
	return c
}

// SetDir sets the directory to execute commands in.
func (c *Config) SetDir(dir string) *Config {
	c.Dir = dir
	return c
}

// SetEnv sets the given environment variable.
func (c *Config) SetEnv(key, value string) *Config {
	if c.Env == nil {
		c.Env = map[string]string{}
	}
	c.Env[key] = value
	return c
}

// PrintCmd uses [Config.Commands] to print the given command, if it
// is non-nil, and the directory it is run in relative to the
// current directory, if it differs from it.
func (c *Config) PrintCmd(cmd string, err error) {
	if c.Commands == nil {
		return
	}
	if c.Dir != "" {
		cwd, _ := os.Getwd()
		rel, rerr := filepath.Rel(cwd, c.Dir)
		if rerr != nil {
			rel = c.Dir
		}
		if rel != "." {
			io.WriteString(c.Commands, logx.CmdColor(rel)+": ")
		}
	}
	io.WriteString(c.Commands, logx.CmdColor(cmd)+"\n")
	if err != nil && c.Errors != nil {
		io.WriteString(c.Errors, logx.ErrorColor(err.Error())+"\n")
	}
}

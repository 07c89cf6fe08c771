// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Adapted in part from: https://github.com/magefile/mage
// Copyright presumably by Nate Finch, primary contributor
// Apache License, Version 2.0, January 2004

package exec

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Exec executes the command, piping its stdout and stderr to the config
// writers. If the command fails, it will return an error with the command output.
// Unless [Config.NoExpand] is set, the given cmd and args may include
// references to environment variables in $FOO format, in which case these
// will be expanded with [Config.Expand] before the command is run.
//
// Ran reports if the command ran (rather than was not found or not executable).
// If err == nil, ran is always true.
func (c *Config) Exec(cmd string, args ...string) (ran bool, err error) {
	if !c.NoExpand {
		cmd = c.Expand(cmd)
		for i := range args {
			args[i] = c.Expand(args[i])
		}
	}
	ran, err = c.run(cmd, args...)
	if err == nil {
		return true, nil
	}
	return ran, fmt.Errorf(`failed to run "%s %s": %w`, cmd, strings.Join(args, " "), err)
}

// Expand replaces references to environment variables in $FOO or ${FOO}
// format in s, looking them up in [Config.Env] and then in the environment.
func (c *Config) Expand(s string) string {
	return os.Expand(s, func(name string) string {
		if v, ok := c.Env[name]; ok {
			return v
		}
		return os.Getenv(name)
	})
}

func (c *Config) run(cmd string, args ...string) (ran bool, err error) {
	cm := exec.Command(cmd, args...)
	cm.Env = os.Environ()
	for k, v := range c.Env {
		cm.Env = append(cm.Env, k+"="+v)
	}
	cm.Stderr = c.Stderr
	cm.Stdout = c.Stdout
	cm.Dir = c.Dir

	c.PrintCmd(cmd+" "+strings.Join(args, " "), nil)
	if c.PrintOnly {
		return true, nil
	}
	err = cm.Run()
	return CmdRan(err), err
}

// LookPath is [exec.LookPath].
func LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// CmdRan examines the error to determine if it was generated as a result of a
// command running via os/exec.Command. If the error is nil, or the command ran
// (even if it exited with a non-zero exit code), CmdRan reports true. If the
// error is an unrecognized type, or it is an error from exec.Command that says
// the command failed to run (usually due to the command not existing or not
// being executable), it reports false.
func CmdRan(err error) bool {
	if err == nil {
		return true
	}
	ee, ok := err.(*exec.ExitError)
	if ok {
		return ee.Exited()
	}
	return false
}

type exitStatus interface {
	ExitStatus() int
}

// ExitStatus returns the exit status of the error if it is an exec.ExitError
// or if it implements ExitStatus() int.
// 0 if it is nil or 1 if it is a different error.
func ExitStatus(err error) int {
	if err == nil {
		return 0
	}
	if e, ok := err.(exitStatus); ok {
		return e.ExitStatus()
	}
	if e, ok := err.(*exec.ExitError); ok {
		if ex, ok := e.Sys().(exitStatus); ok {
			return ex.ExitStatus()
		}
	}
	return 1
}

// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Adapted in part from: https://github.com/magefile/mage
// Copyright presumably by Nate Finch, primary contributor
// Apache License, Version 2.0, January 2004

package exec

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-shellwords"
)

// SplitCommand parses a full command string such as
// `/usr/bin/latex -shell-escape` into its command and leading args.
func SplitCommand(cstr string) (string, []string, error) {
	args, err := shellwords.Parse(cstr)
	if err != nil {
		return "", nil, err
	}
	if len(args) == 0 {
		return "", nil, fmt.Errorf("command %q was not parsed correctly into content", cstr)
	}
	return args[0], args[1:], nil
}

// CombinedOutput runs the command and returns the text from both
// stdout and stderr, in the order written.
func (c *Config) CombinedOutput(cmd string, args ...string) (string, error) {
	oldStdout, oldStderr := c.Stdout, c.Stderr
	buf := &bytes.Buffer{}
	c.Stdout = buf
	c.Stderr = buf
	_, err := c.Exec(cmd, args...)
	c.Stdout, c.Stderr = oldStdout, oldStderr
	return strings.TrimSuffix(buf.String(), "\n"), err
}

// RemoveAll is a simple helper function that calls [os.RemoveAll] and [Config.PrintCmd].
func (c *Config) RemoveAll(path string) error {
	var err error
	if !c.PrintOnly {
		err = os.RemoveAll(path)
	}
	c.PrintCmd(fmt.Sprintf("rm -rf %q", path), err)
	return err
}

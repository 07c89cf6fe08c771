// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pipeline

import (
	"fmt"
	"regexp"

	"github.com/Masterminds/semver/v3"
	"github.com/latexformula/latexformula/base/exec"
)

// versionArgs are the arguments that make each program print its version.
var versionArgs = map[Stage][]string{
	Compile:   {"--version"},
	Convert:   {"--version"},
	Vectorize: {"-help"},
}

// minVersions are the oldest supported versions of the programs, if any.
// Older versions of pstoedit lack the plot-svg driver options used here.
var minVersions = map[Stage]string{
	Vectorize: ">= 3.0",
}

var versionRegexp = regexp.MustCompile(`[0-9]+\.[0-9]+(\.[0-9]+)?`)

// ToolStatus is the result of checking the program of one stage.
type ToolStatus struct {

	// Stage is the stage the program runs.
	Stage Stage

	// Command is the configured command.
	Command string

	// Path is the resolved path of the program; empty if it was not found.
	Path string

	// Version is the version reported by the program, if it could be parsed.
	Version *semver.Version

	// Err is why the program can not be used, if anything.
	Err error
}

// OK returns whether the program is usable.
func (ts *ToolStatus) OK() bool {
	return ts.Err == nil
}

func (ts *ToolStatus) String() string {
	ver := "unknown version"
	if ts.Version != nil {
		ver = ts.Version.Original()
	}
	if ts.Path == "" {
		return fmt.Sprintf("%s: %v", ts.Stage, ts.Err)
	}
	if ts.Err != nil {
		return fmt.Sprintf("%s: %s (%s): %v", ts.Stage, ts.Path, ver, ts.Err)
	}
	return fmt.Sprintf("%s: %s (%s)", ts.Stage, ts.Path, ver)
}

// ParseVersion returns the first version number in the given
// program output.
func ParseVersion(output string) (*semver.Version, error) {
	vs := versionRegexp.FindString(output)
	if vs == "" {
		return nil, fmt.Errorf("no version number found")
	}
	return semver.NewVersion(vs)
}

// Check locates the program of each stage and verifies its version.
func (t *Tools) Check() []*ToolStatus {
	res := make([]*ToolStatus, len(Stages))
	for i, st := range Stages {
		res[i] = t.check(st)
	}
	return res
}

func (t *Tools) check(st Stage) *ToolStatus {
	ts := &ToolStatus{Stage: st, Command: t.Command(st)}
	cmd, args, err := exec.SplitCommand(ts.Command)
	if err != nil {
		ts.Err = err
		return ts
	}
	cfg := exec.Minor()
	ts.Path, err = exec.LookPath(cfg.Expand(cmd))
	if err != nil {
		ts.Err = err
		return ts
	}
	// some programs exit with an error after printing their version
	out, _ := cfg.CombinedOutput(ts.Path, append(args, versionArgs[st]...)...)
	ts.Version, err = ParseVersion(out)
	if err != nil {
		ts.Err = fmt.Errorf("could not determine version: %w", err)
		return ts
	}
	constraint, ok := minVersions[st]
	if !ok {
		return ts
	}
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		ts.Err = err
		return ts
	}
	if !c.Check(ts.Version) {
		ts.Err = fmt.Errorf("version %s is not supported; need %s", ts.Version.Original(), constraint)
	}
	return ts
}

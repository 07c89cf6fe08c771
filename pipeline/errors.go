// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pipeline

import (
	"fmt"
	"io"
)

// CompileError is returned when latex does not produce a DVI file,
// which is how invalid LaTeX input shows up.
type CompileError struct {

	// Log is the full output of latex.
	Log string

	// Filtered are the lines of Log that describe the errors.
	Filtered string

	// WorkDir is the directory with the intermediate files,
	// which is left in place for inspection.
	WorkDir string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("invalid LaTeX input; temporary files were left in %s", e.WorkDir)
}

// Report writes the diagnostic for the user: the error lines of the log,
// a short summary with the location of the temporary files, and then
// the full log.
func (e *CompileError) Report(w io.Writer) {
	io.WriteString(w, e.Filtered)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Invalid LaTeX input.")
	fmt.Fprintln(w, "Temporary files were left in:", e.WorkDir)
	fmt.Fprintln(w)
	io.WriteString(w, e.Log)
}

// StageError is returned when a stage after [Compile] fails to produce
// its output, or produces output that is malformed.
type StageError struct {

	// Stage is the stage that failed.
	Stage Stage

	// Artifact is the output file of the stage.
	Artifact string

	// Err is the underlying error.
	Err error
}

func (e *StageError) Error() string {
	if e.Artifact == "" {
		return fmt.Sprintf("%s: %v", e.Stage, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Stage, e.Artifact, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

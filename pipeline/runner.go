// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pipeline

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/h2non/filetype"
	"github.com/h2non/filetype/types"
	"github.com/latexformula/latexformula/base/exec"
	"github.com/latexformula/latexformula/latex"
	"github.com/latexformula/latexformula/svg"
)

// DefaultName is the base name of all of the files in the working directory.
const DefaultName = "latexformula"

// Tools are the commands used to run each stage. Each one is a
// command string with optional leading arguments, parsed with shell
// quoting rules, such as "/opt/texlive/bin/latex -shell-escape".
type Tools struct {
	Latex    string `default:"latex"`
	Dvips    string `default:"dvips"`
	Pstoedit string `default:"pstoedit"`
}

// Command returns the command string for the given stage.
func (t *Tools) Command(st Stage) string {
	switch st {
	case Compile:
		return t.Latex
	case Convert:
		return t.Dvips
	}
	return t.Pstoedit
}

// Runner runs the pipeline in one working directory.
type Runner struct {

	// Tools are the commands for the stages.
	Tools Tools

	// Dir is the absolute path of the working directory, which contains
	// the source file and receives all of the outputs.
	Dir string

	// Name is the base name of the files; see [DefaultName].
	Name string
}

// NewRunner returns a new [Runner] for the given working directory.
func NewRunner(dir string, tools Tools) *Runner {
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	return &Runner{Tools: tools, Dir: dir, Name: DefaultName}
}

// File returns the path of the file in the working directory
// with the given extension.
func (r *Runner) File(ext string) string {
	return filepath.Join(r.Dir, r.Name+ext)
}

// SourceFile returns the path of the LaTeX source file.
func (r *Runner) SourceFile() string {
	return r.File(".tex")
}

// Output returns the path of the output file of the given stage.
func (r *Runner) Output(st Stage) string {
	return r.File(st.Ext())
}

func (r *Runner) args(st Stage) []string {
	switch st {
	case Compile:
		return []string{"-output-directory=" + r.Dir, "-halt-on-error", "-interaction=nonstopmode", r.SourceFile()}
	case Convert:
		return []string{"-q", "-f", "-E", "-D", "600", "-y", "5000", "-o", r.Output(Convert), r.Output(Compile)}
	}
	return []string{"-f", "plot-svg", "-dt", "-ssp", r.Output(Convert), r.Output(Vectorize)}
}

// Run runs all of the stages on the source file, which must already
// have been written, and returns the resulting SVG document.
func (r *Runner) Run() (*svg.Document, error) {
	for _, st := range Stages {
		if err := r.RunStage(st); err != nil {
			return nil, err
		}
	}
	out := r.Output(Vectorize)
	doc, err := svg.OpenXML(out)
	if err != nil {
		return nil, &StageError{Stage: Vectorize, Artifact: out, Err: err}
	}
	return doc, nil
}

// RunStage runs the given stage, capturing its standard output and
// error in the working directory, and checks its output file.
// A missing DVI file results in a [CompileError], and any other
// failure in a [StageError].
func (r *Runner) RunStage(st Stage) error {
	cmd, cargs, err := exec.SplitCommand(r.Tools.Command(st))
	if err != nil {
		return &StageError{Stage: st, Err: err}
	}
	outFile := r.File("." + st.String() + ".out")
	errFile := r.File("." + st.String() + ".err")
	fo, err := os.Create(outFile)
	if err != nil {
		return &StageError{Stage: st, Err: err}
	}
	fe, err := os.Create(errFile)
	if err != nil {
		fo.Close()
		return &StageError{Stage: st, Err: err}
	}
	slog.Debug("running stage", "stage", st, "dir", r.Dir)
	// only the configured tool command may refer to environment variables
	cfg := exec.Major().SetDir(r.Dir).SetStdout(fo).SetStderr(fe).SetNoExpand(true)
	cmd = cfg.Expand(cmd)
	for i := range cargs {
		cargs[i] = cfg.Expand(cargs[i])
	}
	ran, runErr := cfg.Exec(cmd, append(cargs, r.args(st)...)...)
	fo.Close()
	fe.Close()

	artifact := r.Output(st)
	if !ran {
		return &StageError{Stage: st, Artifact: artifact, Err: runErr}
	}
	if aerr := CheckArtifact(artifact, st.kind()); aerr != nil {
		if st == Compile {
			return r.compileError(outFile, errFile)
		}
		if runErr != nil {
			aerr = errors.Join(aerr, runErr)
		}
		return &StageError{Stage: st, Artifact: artifact, Err: aerr}
	}
	if runErr != nil {
		slog.Warn("stage reported an error but produced its output", "stage", st, "err", runErr)
	}
	return nil
}

func (r *Runner) compileError(outFile, errFile string) error {
	b, err := os.ReadFile(outFile)
	if err != nil {
		return &StageError{Stage: Compile, Artifact: r.Output(Compile), Err: err}
	}
	if eb, err := os.ReadFile(errFile); err == nil {
		b = append(b, eb...)
	}
	log := string(b)
	return &CompileError{Log: log, Filtered: latex.FilterLog(log), WorkDir: r.Dir}
}

// ErrEmpty is the error for an output file without content.
var ErrEmpty = errors.New("file is empty")

// CheckArtifact checks that the given file exists, is not empty and,
// unless kind is [types.Unknown], starts with the magic number of kind.
func CheckArtifact(path string, kind types.Type) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	head := make([]byte, 262)
	n, err := io.ReadFull(f, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return err
	}
	head = head[:n]
	if n == 0 {
		return ErrEmpty
	}
	if kind != types.Unknown && !filetype.IsType(head, kind) {
		return fmt.Errorf("not a %s file", kind.Extension)
	}
	return nil
}

// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration
// struct for the latexformula tool.
package config

import (
	"fmt"

	"github.com/latexformula/latexformula/math32"
	"github.com/latexformula/latexformula/pipeline"
	"github.com/lucasb-eyer/go-colorful"
)

// Config is the main config struct
// that contains all of the configuration
// options for the latexformula tool.
// Options are set from `default:` tags, then
// from config files, then from command line flags.
type Config struct {

	// the LaTeX formula, including math delimiters such as $...$
	Formula string `flag:"f,formula" desc:"the LaTeX formula, including math delimiters such as $...$"`

	// additional LaTeX preamble, such as \usepackage lines
	Preamble string `flag:"p,preamble" desc:"additional LaTeX preamble, such as \\usepackage lines"`

	// the font size of the formula, in points
	FontSize float32 `flag:"s,font-size" default:"10" desc:"the font size of the formula, in points"`

	// the file containing the formula, which is imported again whenever it changes
	FormulaFile string `cmd:"watch" posarg:"0" desc:"the file containing the formula, which is imported again whenever it changes"`

	// the SVG document to add the formula to; - for standard input, or a new blank A4 drawing if empty
	Document string `posarg:"1" desc:"the SVG document to add the formula to; - for standard input, or a new blank A4 drawing if empty"`

	// the file to write the resulting document to; standard output if empty
	Output string `flag:"o,output" desc:"the file to write the resulting document to; standard output if empty"`

	// what to do when the calibration marker is not found: fallback or error
	MarkerPolicy MarkerPolicy `default:"fallback" desc:"what to do when the calibration marker is not found: fallback or error"`

	// the fill color reserved for the calibration marker
	MarkerColor string `default:"#fe01fd" desc:"the fill color reserved for the calibration marker"`

	// a directory to keep the intermediate files in, instead of a temporary directory
	WorkDir string `desc:"a directory to keep the intermediate files in, instead of a temporary directory"`

	// what to do with the temporary directory after a successful run: remove or trash
	Cleanup Cleanup `default:"remove" desc:"what to do with the temporary directory after a successful run: remove or trash"`

	// the commands for the external programs
	Tools pipeline.Tools

	// show informational messages, including the commands run
	Verbose bool `flag:"v,verbose" desc:"show informational messages, including the commands run"`

	// show debugging messages
	VeryVerbose bool `flag:"vv,very-verbose" desc:"show debugging messages"`

	// only show errors
	Quiet bool `flag:"q,quiet" desc:"only show errors"`

	// additional config files to load
	Includes []string `flag:"config" desc:"additional config files to load"`
}

// IncludesPtr returns a pointer to the list of additional config files.
func (c *Config) IncludesPtr() *[]string {
	return &c.Includes
}

// Validate returns an error if the configuration can not be used
// for importing a formula.
func (c *Config) Validate() error {
	if !(c.FontSize > 0) || math32.IsInf(c.FontSize, 0) {
		return fmt.Errorf("font size must be positive, not %v", c.FontSize)
	}
	if _, err := colorful.Hex(c.MarkerColor); err != nil {
		return fmt.Errorf("invalid marker color %q: must be #rrggbb", c.MarkerColor)
	}
	return nil
}

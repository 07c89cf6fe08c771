// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command latexformula adds LaTeX formulas to SVG drawings,
// as vector paths in the current layer. It can run on its own
// or as an Inkscape extension, using latexformula.inx.
package main

import (
	"errors"
	"os"

	"github.com/latexformula/latexformula/base/logx"
	"github.com/latexformula/latexformula/cli"
	"github.com/latexformula/latexformula/config"
	"github.com/latexformula/latexformula/pipeline"
)

func main() {
	opts := cli.DefaultOptions("latexformula", "Latexformula adds LaTeX formulas to SVG drawings.")
	// Inkscape passes flags of its own, such as --id
	opts.IgnoreUnknown = true
	err := cli.Run(opts, &config.Config{}, Commands...)
	if err == nil {
		return
	}
	var ce *pipeline.CompileError
	if errors.As(err, &ce) {
		ce.Report(os.Stderr)
	} else {
		logx.PrintlnError(err)
	}
	os.Exit(1)
}

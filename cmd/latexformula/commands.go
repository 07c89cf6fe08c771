// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/latexformula/latexformula/base/logx"
	"github.com/latexformula/latexformula/cli"
	"github.com/latexformula/latexformula/config"
	"github.com/latexformula/latexformula/formula"
	"github.com/latexformula/latexformula/math32"
	"github.com/latexformula/latexformula/pipeline"
)

// Commands are the commands of the tool.
var Commands = []*cli.Cmd[*config.Config]{
	{
		Func: Import,
		Name: "import",
		Doc:  "Import adds the formula to the document, or to a new drawing, and writes the result to the output file or standard output.",
		Root: true,
	},
	{
		Func: Check,
		Name: "check",
		Doc:  "Check locates latex, dvips and pstoedit and reports their versions.",
	},
	{
		Func: Watch,
		Name: "watch",
		Doc:  "Watch imports the formula in the given file into the document whenever the file changes, writing the result to the output file.",
	},
	{
		Func: List,
		Name: "list",
		Doc:  "List prints the formulas in the document.",
	},
}

// stdout is where documents and reports without an output file go.
var stdout io.Writer = os.Stdout

func setLogLevel(c *config.Config) {
	logx.UserLevel = logx.LevelFromFlags(c.VeryVerbose, c.Verbose, c.Quiet)
	logx.SetDefaultLogger()
}

// Import imports the configured formula.
func Import(c *config.Config) error {
	setLogLevel(c)
	if strings.TrimSpace(c.Formula) == "" {
		return errors.New("no formula given; use -f or --formula")
	}
	im := formula.NewImporter(c)
	doc, err := im.LoadDocument()
	if err != nil {
		return err
	}
	if _, err := im.Import(doc, im.Request()); err != nil {
		return err
	}
	return im.Save(doc, stdout)
}

// Check checks the external programs.
func Check(c *config.Config) error {
	setLogLevel(c)
	failed := 0
	for _, ts := range c.Tools.Check() {
		fmt.Fprintln(stdout, ts)
		if !ts.OK() {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d programs can not be used", failed, len(pipeline.Stages))
	}
	return nil
}

// Watch imports the formula file whenever it changes, until interrupted.
func Watch(c *config.Config) error {
	setLogLevel(c)
	if c.FormulaFile == "" {
		return errors.New("no formula file given")
	}
	if c.Output == "" {
		return errors.New("watch needs an output file; use -o or --output")
	}
	im := formula.NewImporter(c)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return formula.Watch(ctx, c.FormulaFile, func() error {
		err := im.ImportFile(c.FormulaFile)
		var ce *pipeline.CompileError
		if errors.As(err, &ce) {
			ce.Report(os.Stderr)
		}
		return err
	})
}

// List lists the formulas in the document.
func List(c *config.Config) error {
	setLogLevel(c)
	if c.Document == "" {
		return errors.New("no document given")
	}
	doc, err := formula.NewImporter(c).LoadDocument()
	if err != nil {
		return err
	}
	for _, e := range formula.List(doc) {
		id := e.Node.ID()
		if id == "" {
			id = "-"
		}
		pos, err := e.Position()
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "%s\t%s,%s\t%gpt\t%s\n", id, math32.FormatFloat32(pos.X), math32.FormatFloat32(pos.Y), e.Request.FontSize, e.Request.Formula)
	}
	return nil
}

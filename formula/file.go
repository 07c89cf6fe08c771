// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package formula

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/latexformula/latexformula/base/fsx"
	"github.com/latexformula/latexformula/svg"
)

// LoadDocument opens the configured document, or returns a new blank
// drawing if there is none. A document named "-" is read from stdin.
func (im *Importer) LoadDocument() (*svg.Document, error) {
	switch im.Config.Document {
	case "":
		return svg.NewDocument(), nil
	case "-":
		return svg.ReadXML(stdin)
	}
	fn, err := fsx.ExpandHome(im.Config.Document)
	if err != nil {
		return nil, err
	}
	return svg.OpenXML(fn)
}

// Save writes the given document to the configured output file,
// or to w if there is none.
func (im *Importer) Save(doc *svg.Document, w io.Writer) error {
	if im.Config.Output == "" {
		return doc.WriteXML(w)
	}
	fn, err := fsx.ExpandHome(im.Config.Output)
	if err != nil {
		return err
	}
	return doc.SaveXML(fn)
}

// stdin is where a document named "-" is read from.
var stdin io.Reader = os.Stdin

// ReadFormula returns the formula stored in the given file,
// without surrounding whitespace.
func ReadFormula(fname string) (string, error) {
	b, err := os.ReadFile(fname)
	if err != nil {
		return "", err
	}
	f := strings.TrimSpace(string(b))
	if f == "" {
		return "", fmt.Errorf("formula file %q is empty", fname)
	}
	return f, nil
}

// ImportFile imports the formula stored in the given file into the
// configured document, and saves the result to the configured output.
func (im *Importer) ImportFile(fname string) error {
	if im.Config.Output == "" {
		return errors.New("an output file is required")
	}
	f, err := ReadFormula(fname)
	if err != nil {
		return err
	}
	doc, err := im.LoadDocument()
	if err != nil {
		return err
	}
	req := im.Request()
	req.Formula = f
	if _, err := im.Import(doc, req); err != nil {
		return err
	}
	return im.Save(doc, nil)
}

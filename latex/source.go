// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package latex

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/text/unicode/norm"
)

// DefaultMarkerColor is the fill color reserved for the calibration marker.
// It must not be used by the formula itself.
const DefaultMarkerColor = "#fe01fd"

// MarkerSize is the side length of the calibration marker square.
const MarkerSize = "1cm"

// The template uses << >> delimiters, as TeX needs the braces.
const texTemplate = `%% temporary file created by latexformula
\documentclass{article}
\usepackage{amsmath}
\usepackage{amssymb}
\usepackage{amsfonts}
\usepackage{color}
<<.Preamble>>
\definecolor{latexformulamarker}{RGB}{<<.R>>,<<.G>>,<<.B>>}
\thispagestyle{empty}
\begin{document}
\setlength{\unitlength}{1cm}%
\begin{picture}(0,0)
\put(0,0){\color{latexformulamarker}\rule{<<.MarkerSize>>}{<<.MarkerSize>>}}
\end{picture}%
<<.Formula>>
\end{document}
`

var tmpl = template.Must(template.New("tex").Delims("<<", ">>").Parse(texTemplate))

// Source is the content of one LaTeX source file.
type Source struct {

	// Formula is the LaTeX code of the formula, including any math
	// delimiters. It is not validated.
	Formula string

	// Preamble is additional preamble code, inserted verbatim.
	Preamble string

	// MarkerColor is the fill color of the calibration marker.
	MarkerColor colorful.Color
}

// NewSource returns a new [Source] for the given formula and preamble,
// normalized to Unicode NFC, with the given calibration marker color
// in hex notation (e.g., [DefaultMarkerColor]).
func NewSource(formula, preamble, markerColor string) (*Source, error) {
	c, err := colorful.Hex(markerColor)
	if err != nil {
		return nil, fmt.Errorf("invalid marker color %q: %w", markerColor, err)
	}
	return &Source{
		Formula:     norm.NFC.String(formula),
		Preamble:    norm.NFC.String(preamble),
		MarkerColor: c,
	}, nil
}

// Render writes the LaTeX document to the given writer.
func (s *Source) Render(w io.Writer) error {
	r, g, b := s.MarkerColor.RGB255()
	return tmpl.Execute(w, map[string]any{
		"Preamble":   s.Preamble,
		"Formula":    s.Formula,
		"R":          r,
		"G":          g,
		"B":          b,
		"MarkerSize": MarkerSize,
	})
}

// Save writes the LaTeX document to the given file, replacing any
// existing file.
func (s *Source) Save(fname string) error {
	fp, err := os.Create(fname)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(fp)
	err = s.Render(bw)
	if err == nil {
		err = bw.Flush()
	}
	if cerr := fp.Close(); err == nil {
		err = cerr
	}
	return err
}

// WriteSource writes the LaTeX document for the given formula and
// preamble, with a calibration marker of the given color, to the
// given file.
func WriteSource(fname, formula, preamble, markerColor string) error {
	src, err := NewSource(formula, preamble, markerColor)
	if err != nil {
		return err
	}
	return src.Save(fname)
}

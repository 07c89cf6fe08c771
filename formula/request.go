// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package formula

import (
	"fmt"

	"github.com/latexformula/latexformula/math32"
	"github.com/latexformula/latexformula/rewrite"
	"github.com/latexformula/latexformula/svg"
)

// Local names of the attributes in [rewrite.Namespace] recorded on the
// imported group, so that the formula can be found and edited again later.
const (
	FormulaAttr  = rewrite.FormulaAttr
	PreambleAttr = "preamble"
	FontSizeAttr = "fontsize"
)

// Request is one formula to import.
type Request struct {

	// Formula is the LaTeX code of the formula, including any math
	// delimiters such as $...$.
	Formula string

	// Preamble is additional LaTeX preamble code.
	Preamble string

	// FontSize is the font size in points, which must be positive.
	FontSize float32
}

// Validate returns an error if the request can not be imported.
// The formula itself is not checked; that is left to latex.
func (r *Request) Validate() error {
	if !(r.FontSize > 0) || math32.IsInf(r.FontSize, 0) {
		return fmt.Errorf("font size must be positive, not %v", r.FontSize)
	}
	return nil
}

// tag records the request on the given group, under the given prefix
// for [rewrite.Namespace].
func (r *Request) tag(g *svg.Node, prefix string) {
	g.SetAttr(prefix+":"+FormulaAttr, r.Formula)
	g.SetAttr(prefix+":"+PreambleAttr, r.Preamble)
	g.SetAttr(prefix+":"+FontSizeAttr, math32.FormatFloat32(r.FontSize))
}

// Attr returns the value of the attribute in [rewrite.Namespace] with
// the given local name on n, and whether it exists. The prefix is the one
// bound to the namespace in the scope of n. An unbound [rewrite.Prefix]
// is taken as well, for groups not yet placed in a document.
func Attr(n *svg.Node, local string) (string, bool) {
	p, ok := n.PrefixFor(rewrite.Namespace)
	if !ok || p == "" {
		if _, bound := n.LookupPrefix(rewrite.Prefix); bound {
			return "", false
		}
		p = rewrite.Prefix
	}
	return n.AttrValue(p + ":" + local)
}

// RequestFromNode returns the request recorded on the given group by
// an earlier import, and whether there was one. A missing or invalid
// font size is taken as 10.
func RequestFromNode(n *svg.Node) (*Request, bool) {
	f, ok := Attr(n, FormulaAttr)
	if !ok {
		return nil, false
	}
	r := &Request{Formula: f, FontSize: 10}
	r.Preamble, _ = Attr(n, PreambleAttr)
	if fs, ok := Attr(n, FontSizeAttr); ok {
		if v, err := math32.ParseFloat32(fs); err == nil && v > 0 && !math32.IsInf(v, 0) {
			r.FontSize = v
		}
	}
	return r, true
}

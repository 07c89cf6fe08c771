// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rewrite copies the geometry of the converted SVG into a new
// tree for the host document, keeping only groups, paths, polylines
// and polygons, and placing every group with the calibration transform.
package rewrite

import (
	"slices"

	"github.com/latexformula/latexformula/calibrate"
	"github.com/latexformula/latexformula/math32"
	"github.com/latexformula/latexformula/svg"
)

// Namespace is the namespace of the attributes that record the formula
// on the imported groups, declared with the prefix [Prefix].
const (
	Namespace = "https://github.com/latexformula/latexformula"
	Prefix    = "latexformula"
)

// FormulaAttr is the local name of the attribute in [Namespace]
// holding the formula text.
const FormulaAttr = "formula"

// Options are the inputs of [Tree] besides the source tree.
type Options struct {

	// SVGPrefix is the namespace prefix of SVG elements in the host
	// document; usually empty.
	SVGPrefix string

	// Calibration maps the source coordinates to host coordinates.
	Calibration calibrate.Calibration

	// LayerTransform is the transform of the host layer that
	// receives the tree, which is undone on every group.
	LayerTransform math32.Matrix2

	// AttrPrefix is the prefix bound to [Namespace] in the host
	// document; [Prefix] if empty.
	AttrPrefix string

	// Formula is recorded on every group.
	Formula string

	// Marker is the calibration marker node in the source tree, which is
	// left out; nil if there is none.
	Marker *svg.Node
}

func (o *Options) formulaAttr() string {
	if o.AttrPrefix == "" {
		return Prefix + ":" + FormulaAttr
	}
	return o.AttrPrefix + ":" + FormulaAttr
}

// GroupTransform returns the transform attribute value for the imported
// groups: the inverse of the layer transform, omitted if that is the
// identity, followed by the calibration matrix.
func GroupTransform(layer math32.Matrix2, cal calibrate.Calibration) string {
	m := cal.Matrix().MatrixString()
	if layer.IsIdentity() {
		return m
	}
	return layer.Inverse().String() + " " + m
}

// Tree returns a new tree for the host document from the given source
// root. The root becomes a group without attributes. Every other
// group, path, polyline and polygon element is copied with all of its
// attributes, except for the marker. Any other element is left out
// together with its children, as is all non-element content.
// Every copied group gets the transform from [GroupTransform], replacing
// its own, and the formula in [FormulaAttr].
func Tree(src *svg.Node, opts *Options) *svg.Node {
	xf := GroupTransform(opts.LayerTransform, opts.Calibration)
	out := svg.NewElement(opts.SVGPrefix, "g")
	cloneChildren(out, src, opts, xf)
	return out
}

func cloneChildren(out, src *svg.Node, opts *Options, xf string) {
	for _, c := range src.Children {
		if n := clone(c, opts, xf); n != nil {
			out.AddChild(n)
		}
	}
}

func clone(n *svg.Node, opts *Options, xf string) *svg.Node {
	if n == opts.Marker || n.Kind() == svg.Other {
		return nil
	}
	out := svg.NewElement(opts.SVGPrefix, n.Name.Local)
	out.Attr = slices.Clone(n.Attr)
	if n.Kind() == svg.Group {
		out.SetAttr("transform", xf)
		out.SetAttr(opts.formulaAttr(), opts.Formula)
	}
	cloneChildren(out, n, opts, xf)
	return out
}

// AttrPrefixes returns the namespace prefixes used by attribute names
// in the given tree, in order of first use, other than the predefined
// xml and xmlns prefixes.
func AttrPrefixes(root *svg.Node) []string {
	var res []string
	root.WalkDown(func(n *svg.Node) bool {
		for _, a := range n.Attr {
			p := a.Name.Space
			if p == "" || p == "xml" || p == "xmlns" || slices.Contains(res, p) {
				continue
			}
			res = append(res, p)
		}
		return true
	})
	return res
}

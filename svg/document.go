// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"encoding/xml"
	"fmt"
	"strconv"

	"github.com/latexformula/latexformula/math32"
)

// NewDocument returns a new blank A4 drawing, in millimeter user units,
// with a single layer that is also the current layer.
func NewDocument() *Document {
	root := NewElement("", "svg")
	root.SetAttr("xmlns", NamespaceSVG)
	root.SetAttr("xmlns:inkscape", NamespaceInkscape)
	root.SetAttr("xmlns:sodipodi", NamespaceSodipodi)
	root.SetAttr("width", "210mm")
	root.SetAttr("height", "297mm")
	root.SetAttr("viewBox", "0 0 210 297")
	root.SetAttr("version", "1.1")

	nv := NewElement("sodipodi", "namedview")
	nv.SetAttr("id", "namedview1")
	nv.SetAttr("inkscape:document-units", "mm")
	nv.SetAttr("inkscape:current-layer", "layer1")
	root.AddChild(nv)

	layer := NewElement("", "g")
	layer.SetAttr("id", "layer1")
	layer.SetAttr("inkscape:label", "Layer 1")
	layer.SetAttr("inkscape:groupmode", "layer")
	root.AddChild(layer)

	return &Document{
		Prolog: []*Node{
			{Token: xml.ProcInst{Target: "xml", Inst: []byte(`version="1.0" encoding="UTF-8" standalone="no"`)}},
			{Token: xml.CharData("\n")},
		},
		Root:   root,
		Epilog: []*Node{{Token: xml.CharData("\n")}},
	}
}

// SVGPrefix returns the namespace prefix under which the document
// writes SVG elements, which is normally empty.
func (d *Document) SVGPrefix() string {
	if p, ok := d.Root.PrefixFor(NamespaceSVG); ok {
		return p
	}
	return d.Root.Name.Space
}

// nsAttr returns the qualified name of an attribute in the given namespace,
// using the document's prefix for it if declared and def otherwise.
func (d *Document) nsAttr(uri, def, local string) string {
	p, ok := d.Root.PrefixFor(uri)
	if !ok || p == "" {
		p = def
	}
	return p + ":" + local
}

// EnsureNamespace returns a prefix bound to the given namespace URI on
// the root element. A prefix already bound to the URI is reused.
// Otherwise the given prefix is declared, with a number appended to it
// while it is bound to some other URI.
func (d *Document) EnsureNamespace(prefix, uri string) string {
	if p, ok := d.Root.PrefixFor(uri); ok && p != "" {
		return p
	}
	p := prefix
	for i := 1; ; i++ {
		if _, ok := d.Root.LookupPrefix(p); !ok {
			break
		}
		p = prefix + strconv.Itoa(i)
	}
	d.Root.SetAttr("xmlns:"+p, uri)
	return p
}

// ElementByID returns the element with the given id, or nil.
func (d *Document) ElementByID(id string) *Node {
	var res *Node
	d.Root.WalkDown(func(n *Node) bool {
		if res != nil {
			return false
		}
		if n.ID() == id {
			res = n
			return false
		}
		return true
	})
	return res
}

// CurrentLayer returns the active layer of the drawing: the group named by
// the inkscape:current-layer attribute of sodipodi:namedview, or else the
// last top-level layer group, or else the root element itself.
func (d *Document) CurrentLayer() *Node {
	curAttr := d.nsAttr(NamespaceInkscape, "inkscape", "current-layer")
	for _, c := range d.Root.Elements() {
		if c.Name.Local != "namedview" {
			continue
		}
		id, ok := c.AttrValue(curAttr)
		if !ok || id == "" {
			continue
		}
		if n := d.ElementByID(id); n != nil && n.Kind() == Group {
			return n
		}
	}
	modeAttr := d.nsAttr(NamespaceInkscape, "inkscape", "groupmode")
	var layer *Node
	for _, c := range d.Root.Elements() {
		if c.Kind() != Group {
			continue
		}
		if mode, _ := c.AttrValue(modeAttr); mode == "layer" {
			layer = c
		}
	}
	if layer != nil {
		return layer
	}
	return d.Root
}

// Transform returns the transform attribute of the element as a matrix;
// the identity if it has none.
func (n *Node) Transform() (math32.Matrix2, error) {
	xf := math32.Identity2()
	if ts, ok := n.AttrValue("transform"); ok {
		if err := xf.SetString(ts); err != nil {
			return math32.Identity2(), fmt.Errorf("element %q: %w", n.ID(), err)
		}
	}
	return xf, nil
}

// ParentTransform returns the full compounded 2D transform matrix for all
// of the parents of this node. If self is true, then include our
// own transform too.
func (n *Node) ParentTransform(self bool) (math32.Matrix2, error) {
	var chain []*Node
	if self {
		chain = append(chain, n)
	}
	for p := n.Parent; p != nil; p = p.Parent {
		chain = append(chain, p)
	}
	xf := math32.Identity2()
	for i := len(chain) - 1; i >= 0; i-- {
		t, err := chain[i].Transform()
		if err != nil {
			return math32.Identity2(), err
		}
		xf.SetMul(t)
	}
	return xf, nil
}

// LayerTransform returns the cumulative transform of the current layer,
// which maps layer coordinates to document user units.
func (d *Document) LayerTransform() (math32.Matrix2, error) {
	return d.CurrentLayer().ParentTransform(true)
}

// UserUnitScale returns the number of user units per CSS px,
// from the ratio between the root viewBox width and the physical width.
// It is 1 when either is missing or the width is relative.
func (d *Document) UserUnitScale() float32 {
	vbs, ok := d.Root.AttrValue("viewBox")
	if !ok {
		return 1
	}
	vb := math32.ReadPoints(vbs)
	if len(vb) != 4 || vb[2] <= 0 {
		return 1
	}
	ws, ok := d.Root.AttrValue("width")
	if !ok {
		return 1
	}
	wpx, err := ToPx(ws)
	if err != nil || wpx <= 0 {
		return 1
	}
	return vb[2] / wpx
}

// UnitToUU converts a length with an absolute unit, such as "1cm",
// into the user units of the document.
func (d *Document) UnitToUU(length string) (float32, error) {
	px, err := ToPx(length)
	if err != nil {
		return 0, err
	}
	return px * d.UserUnitScale(), nil
}

// AppendToCurrentLayer appends the given node to the current layer,
// and returns the layer.
func (d *Document) AppendToCurrentLayer(n *Node) *Node {
	layer := d.CurrentLayer()
	layer.AddChild(n)
	return layer
}

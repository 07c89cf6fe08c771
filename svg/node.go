// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"encoding/xml"
	"strings"
)

// Namespace URIs used by SVG documents produced by Inkscape.
const (
	NamespaceSVG      = "http://www.w3.org/2000/svg"
	NamespaceInkscape = "http://www.inkscape.org/namespaces/inkscape"
	NamespaceSodipodi = "http://sodipodi.sourceforge.net/DTD/sodipodi-0.dtd"
	NamespaceXLink    = "http://www.w3.org/1999/xlink"
)

// Kind is the kind of an SVG element, as relevant for importing geometry.
type Kind int32

const (
	// Other is any element that is not one of the geometry kinds below.
	Other Kind = iota

	// Group is a g element.
	Group

	// Path is a path element.
	Path

	// Polyline is a polyline element.
	Polyline

	// Polygon is a polygon element.
	Polygon
)

var kindNames = [...]string{
	Other:    "other",
	Group:    "g",
	Path:     "path",
	Polyline: "polyline",
	Polygon:  "polygon",
}

// String returns the SVG element name of the kind, or "other".
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "other"
	}
	return kindNames[k]
}

// KindOf returns the [Kind] for the given local element name.
func KindOf(local string) Kind {
	switch local {
	case "g":
		return Group
	case "path":
		return Path
	case "polyline":
		return Polyline
	case "polygon":
		return Polygon
	}
	return Other
}

// Node is one item in an SVG document tree. It is either an element,
// with a Name, attributes and children, or a non-element item
// (character data, comment, processing instruction or directive),
// which has a non-nil Token and nothing else.
type Node struct {

	// Name is the raw element name: Space is the namespace prefix
	// as written in the document, not the namespace URI.
	Name xml.Name

	// Attr are the attributes of the element, in document order,
	// with raw (prefixed) names.
	Attr []xml.Attr

	// Children are the child items of the element, in document order.
	Children []*Node

	// Token is the non-element content; nil for elements.
	Token xml.Token

	// Parent is the parent element, nil for the root.
	Parent *Node
}

// NewElement returns a new element with the given namespace prefix
// (empty for the default namespace) and local name.
func NewElement(prefix, local string) *Node {
	return &Node{Name: xml.Name{Space: prefix, Local: local}}
}

// IsElement returns whether the node is an element.
func (n *Node) IsElement() bool {
	return n.Token == nil
}

// Kind returns the [Kind] of the node; non-elements are [Other].
func (n *Node) Kind() Kind {
	if !n.IsElement() {
		return Other
	}
	return KindOf(n.Name.Local)
}

// QName returns the qualified name of the element, as written.
func (n *Node) QName() string {
	return qualified(n.Name)
}

func qualified(nm xml.Name) string {
	if nm.Space == "" {
		return nm.Local
	}
	return nm.Space + ":" + nm.Local
}

func splitQName(name string) xml.Name {
	if prefix, local, ok := strings.Cut(name, ":"); ok {
		return xml.Name{Space: prefix, Local: local}
	}
	return xml.Name{Local: name}
}

// AttrValue returns the value of the attribute with the given
// qualified name (e.g., "fill" or "inkscape:label"), and whether it exists.
func (n *Node) AttrValue(name string) (string, bool) {
	nm := splitQName(name)
	for _, a := range n.Attr {
		if a.Name == nm {
			return a.Value, true
		}
	}
	return "", false
}

// SetAttr sets the attribute with the given qualified name,
// replacing an existing value in place or appending a new attribute.
func (n *Node) SetAttr(name, value string) {
	nm := splitQName(name)
	for i := range n.Attr {
		if n.Attr[i].Name == nm {
			n.Attr[i].Value = value
			return
		}
	}
	n.Attr = append(n.Attr, xml.Attr{Name: nm, Value: value})
}

// DeleteAttr removes the attribute with the given qualified name, if present.
func (n *Node) DeleteAttr(name string) {
	nm := splitQName(name)
	for i := range n.Attr {
		if n.Attr[i].Name == nm {
			n.Attr = append(n.Attr[:i], n.Attr[i+1:]...)
			return
		}
	}
}

// RenameAttrPrefix changes the namespace prefix of the attributes of n
// and its descendant elements from one prefix to another.
func (n *Node) RenameAttrPrefix(from, to string) {
	n.WalkDown(func(n *Node) bool {
		for i := range n.Attr {
			if n.Attr[i].Name.Space == from {
				n.Attr[i].Name.Space = to
			}
		}
		return true
	})
}

// ID returns the id attribute of the element.
func (n *Node) ID() string {
	id, _ := n.AttrValue("id")
	return id
}

// AddChild appends the given node as the last child of n.
func (n *Node) AddChild(c *Node) {
	c.Parent = n
	n.Children = append(n.Children, c)
}

// Elements returns the element children of n, skipping non-element content.
func (n *Node) Elements() []*Node {
	var els []*Node
	for _, c := range n.Children {
		if c.IsElement() {
			els = append(els, c)
		}
	}
	return els
}

// WalkDown calls fun on n and its descendant elements in depth-first
// order. If fun returns false, the children of that node are skipped.
func (n *Node) WalkDown(fun func(n *Node) bool) {
	if !n.IsElement() {
		return
	}
	if !fun(n) {
		return
	}
	for _, c := range n.Children {
		c.WalkDown(fun)
	}
}

// LookupPrefix returns the namespace URI bound to the given prefix
// in the scope of n ("" for the default namespace), searching up
// through the parents, and whether a binding was found.
func (n *Node) LookupPrefix(prefix string) (string, bool) {
	name := xml.Name{Space: "xmlns", Local: prefix}
	if prefix == "" {
		name = xml.Name{Local: "xmlns"}
	}
	for p := n; p != nil; p = p.Parent {
		for _, a := range p.Attr {
			if a.Name == name {
				return a.Value, true
			}
		}
	}
	return "", false
}

// PrefixFor returns the prefix bound to the given namespace URI in the
// scope of n, preferring the default namespace, and whether one was found.
func (n *Node) PrefixFor(uri string) (string, bool) {
	for p := n; p != nil; p = p.Parent {
		for _, a := range p.Attr {
			if a.Value != uri {
				continue
			}
			if a.Name.Space == "" && a.Name.Local == "xmlns" {
				return "", true
			}
		}
		for _, a := range p.Attr {
			if a.Value == uri && a.Name.Space == "xmlns" {
				return a.Name.Local, true
			}
		}
	}
	return "", false
}

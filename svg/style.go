// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"strings"

	"github.com/aymerick/douceur/parser"
)

// StyleProperties parses the declarations of an inline style attribute
// (e.g., "fill:#ff0000;stroke:none") into a map of property names to
// values. Malformed declarations are skipped.
func StyleProperties(style string) map[string]string {
	props := map[string]string{}
	if strings.TrimSpace(style) == "" {
		return props
	}
	decls, err := parser.ParseDeclarations(style)
	if err != nil {
		return props
	}
	for _, d := range decls {
		props[strings.ToLower(d.Property)] = strings.TrimSpace(d.Value)
	}
	return props
}

// Property returns the effective value of the given presentation
// property on the element: a declaration in its style attribute takes
// precedence over the presentation attribute of the same name,
// as in CSS. Inherited values are not considered.
func (n *Node) Property(name string) (string, bool) {
	if st, ok := n.AttrValue("style"); ok {
		if v, has := StyleProperties(st)[name]; has {
			return v, true
		}
	}
	return n.AttrValue(name)
}

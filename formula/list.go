// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package formula

import (
	"github.com/latexformula/latexformula/math32"
	"github.com/latexformula/latexformula/svg"
)

// Entry is a formula found in a document.
type Entry struct {

	// Node is the group holding the formula.
	Node *svg.Node

	// Request is the recorded formula.
	Request *Request
}

// Position returns the point of the document, in user units, that the
// calibration anchor of the formula was placed at. It is the origin for a
// fresh import, and follows the group when it is moved in an editor.
func (e *Entry) Position() (math32.Vector2, error) {
	layer, err := e.Node.ParentTransform(false)
	if err != nil {
		return math32.Vector2{}, err
	}
	full, err := e.Node.ParentTransform(true)
	if err != nil {
		return math32.Vector2{}, err
	}
	return full.Mul(layer.Inverse()).MulVector2AsPoint(math32.Vector2{}), nil
}

// List returns the imported formulas in the given document, in document
// order. Only the outermost group of each import is listed, as every
// group inside it records the formula too.
func List(doc *svg.Document) []Entry {
	var res []Entry
	doc.Root.WalkDown(func(n *svg.Node) bool {
		req, ok := RequestFromNode(n)
		if !ok {
			return true
		}
		res = append(res, Entry{Node: n, Request: req})
		return false
	})
	return res
}

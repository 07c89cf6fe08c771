// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"fmt"

	"github.com/latexformula/latexformula/math32"
	"github.com/tdewolff/parse/v2/strconv"
)

// number of arguments taken by each path command
var pathArgs = map[byte]int{
	'M': 2, 'L': 2, 'H': 1, 'V': 1, 'C': 6, 'S': 4, 'Q': 4, 'T': 2, 'A': 7, 'Z': 0,
}

// PathVertices returns the end points of the segments of the given SVG
// path data, in absolute coordinates. Control points of curves are
// skipped, and a closepath returns to the start of the subpath
// without adding a vertex.
func PathVertices(data string) ([]math32.Vector2, error) {
	b := []byte(data)
	var pts []math32.Vector2
	var cur, start math32.Vector2
	var cmd byte
	i := 0
	skip := func() {
		for i < len(b) {
			switch b[i] {
			case ' ', '\t', '\r', '\n', ',':
				i++
				continue
			}
			return
		}
	}
	for {
		skip()
		if i >= len(b) {
			break
		}
		c := b[i]
		up := c &^ 0x20
		if _, ok := pathArgs[up]; ok {
			cmd = c
			i++
		} else if cmd == 0 {
			// at the start, or after a closepath, which takes no arguments
			return nil, fmt.Errorf("svg: expected a path command at offset %d: %q", i, data)
		}
		ucmd := cmd &^ 0x20
		rel := cmd != ucmd
		na := pathArgs[ucmd]
		if na == 0 {
			cur = start
			cmd = 0
			continue
		}
		args := make([]float32, na)
		for k := range args {
			skip()
			f, n := strconv.ParseFloat(b[i:])
			if n == 0 {
				return nil, fmt.Errorf("svg: invalid path data at offset %d: %q", i, data)
			}
			args[k] = float32(f)
			i += n
		}
		var p math32.Vector2
		switch ucmd {
		case 'H':
			p = math32.Vec2(args[0], cur.Y)
			if rel {
				p.X += cur.X
			}
		case 'V':
			p = math32.Vec2(cur.X, args[0])
			if rel {
				p.Y += cur.Y
			}
		default:
			p = math32.Vec2(args[na-2], args[na-1])
			if rel {
				p = p.Add(cur)
			}
		}
		pts = append(pts, p)
		cur = p
		if ucmd == 'M' {
			start = p
			// subsequent pairs are implicit lineto commands
			if rel {
				cmd = 'l'
			} else {
				cmd = 'L'
			}
		}
	}
	return pts, nil
}

// Points returns the vertices of a polyline, polygon or path element,
// or nil for any other element or malformed geometry.
func (n *Node) Points() []math32.Vector2 {
	switch n.Kind() {
	case Polyline, Polygon:
		ps, _ := n.AttrValue("points")
		return math32.ReadVectors(ps)
	case Path:
		d, _ := n.AttrValue("d")
		pts, err := PathVertices(d)
		if err != nil {
			return nil
		}
		return pts
	}
	return nil
}

// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package calibrate finds the calibration marker in the converted SVG
// and derives the scale and origin of the geometry from it.
// The marker is a square of known size and a reserved fill color,
// placed at the origin of the formula.
package calibrate

import (
	"errors"

	"github.com/latexformula/latexformula/math32"
	"github.com/latexformula/latexformula/svg"
	"github.com/lucasb-eyer/go-colorful"
)

// ErrNoMarker is returned when the calibration marker is required
// but could not be found.
var ErrNoMarker = errors.New("calibration marker not found")

// Tolerance is the default maximum RGB distance between the marker
// color and the fill color of the marker found in the output, which
// absorbs one unit of rounding per channel in the PostScript color path.
const Tolerance = 0.007

// Calibration is the mapping from converter output coordinates to
// host document coordinates.
type Calibration struct {

	// Scale is the number of host user units per output unit.
	Scale float32

	// AnchorX and AnchorY are the output coordinates of the
	// origin of the formula.
	AnchorX, AnchorY float32
}

// Default is the calibration used when no marker was found.
var Default = Calibration{Scale: 1}

// Matrix returns the transform that maps output coordinates to host
// coordinates: the anchor goes to the origin, and the y axis is flipped,
// as PostScript y grows upwards.
func (c Calibration) Matrix() math32.Matrix2 {
	s := c.Scale
	// 0 - x rather than -x, so that a zero anchor does not print as -0
	return math32.Matrix2{XX: s, YY: -s, X0: 0 - c.AnchorX*s, Y0: c.AnchorY * s}
}

// Find returns the first element, in depth-first order, whose fill
// color matches the given color within the given tolerance, or nil.
func Find(root *svg.Node, color colorful.Color, tol float64) *svg.Node {
	var found *svg.Node
	root.WalkDown(func(n *svg.Node) bool {
		if found != nil {
			return false
		}
		fill, ok := n.Property("fill")
		if !ok {
			return true
		}
		if c, ok := svg.ParseColor(fill); ok && svg.ColorsMatch(c, color, tol) {
			found = n
			return false
		}
		return true
	})
	return found
}

// Locate finds the marker with the given color in the tree and computes
// the calibration from its points, given the length of the marker side
// in host user units and the requested font size in points:
//
//	scale = unitCm / (x[2] - x[0]) * fontSize / 10
//
// with the anchor at its first point. It returns the marker node, if any,
// even when its geometry is unusable, so that it can still be removed.
// The result is false if there is no marker, or if it has fewer than
// three points or no horizontal extent.
func Locate(root *svg.Node, color colorful.Color, unitCm, fontSize float32) (Calibration, *svg.Node, bool) {
	marker := Find(root, color, Tolerance)
	if marker == nil {
		return Calibration{}, nil, false
	}
	pts := marker.Points()
	if len(pts) < 3 {
		return Calibration{}, marker, false
	}
	span := pts[2].X - pts[0].X
	if span == 0 {
		return Calibration{}, marker, false
	}
	return Calibration{
		Scale:   unitCm / span * (fontSize / 10),
		AnchorX: pts[0].X,
		AnchorY: pts[0].Y,
	}, marker, true
}

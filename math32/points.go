// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"github.com/tdewolff/parse/v2/strconv"
)

// ReadPoints reads a set of floating point values from a SVG format number
// string -- returns a slice or nil if there was an error.
// Numbers may be separated by whitespace, commas, or nothing at all
// when the sign or decimal point of the next number delimits them
// (e.g., "1-2.5.5").
func ReadPoints(pstr string) []float32 {
	b := []byte(pstr)
	var pts []float32
	for i := 0; i < len(b); {
		switch b[i] {
		case ' ', '\t', '\r', '\n', ',':
			i++
			continue
		}
		f, n := strconv.ParseFloat(b[i:])
		if n == 0 {
			return nil
		}
		pts = append(pts, float32(f))
		i += n
	}
	if pts == nil {
		pts = []float32{}
	}
	return pts
}

// ReadVectors reads an SVG points attribute into a list of vectors.
// It returns nil if the list is malformed or has an odd number of values.
func ReadVectors(pstr string) []Vector2 {
	pts := ReadPoints(pstr)
	if pts == nil || len(pts)%2 != 0 {
		return nil
	}
	vs := make([]Vector2, len(pts)/2)
	for i := range vs {
		vs[i] = Vec2(pts[2*i], pts[2*i+1])
	}
	return vs
}

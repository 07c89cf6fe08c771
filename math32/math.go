// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package math32 is a float32 based vector and affine matrix package
// for 2D vector graphics, including parsing of SVG transform lists
// and coordinate lists.
package math32

import (
	"strconv"

	"github.com/chewxy/math32"
)

// These are mostly just wrappers around chewxy/math32, which has
// some optimized implementations.

// Pi is the ratio of the circumference of a circle to its diameter.
const Pi = math32.Pi

// DegToRad converts a number from degrees to radians
func DegToRad(degrees float32) float32 {
	return degrees * (Pi / 180)
}

// Sin returns the sine of the radian argument x.
func Sin(x float32) float32 {
	return math32.Sin(x)
}

// Cos returns the cosine of the radian argument x.
func Cos(x float32) float32 {
	return math32.Cos(x)
}

// Tan returns the tangent of the radian argument x.
func Tan(x float32) float32 {
	return math32.Tan(x)
}

// IsInf reports whether x is an infinity, according to sign.
// If sign > 0, IsInf reports whether x is positive infinity.
// If sign < 0, IsInf reports whether x is negative infinity.
// If sign == 0, IsInf reports whether x is either infinity.
func IsInf(x float32, sign int) bool {
	return math32.IsInf(x, sign)
}

// ParseFloat32 parses a float32 from the given string.
func ParseFloat32(str string) (float32, error) {
	f, err := strconv.ParseFloat(str, 32)
	return float32(f), err
}

// FormatFloat32 formats the given value in the shortest
// representation that parses back to the same float32.
func FormatFloat32(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}

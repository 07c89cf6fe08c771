// Copyright (c) 2021, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"fmt"
	"strings"
)

// Matrix2 is a 3x2 matrix, the affine transform used by SVG.
// The fields are in the order of the SVG matrix(a,b,c,d,e,f) function:
// XX=a, YX=b, XY=c, YY=d, X0=e, Y0=f.
type Matrix2 struct {
	XX, YX, XY, YY, X0, Y0 float32
}

// Identity2 returns a new identity [Matrix2] matrix.
func Identity2() Matrix2 {
	return Matrix2{
		1, 0,
		0, 1,
		0, 0,
	}
}

// Translate2D returns a Matrix2 2D matrix with given translations
func Translate2D(x, y float32) Matrix2 {
	return Matrix2{
		1, 0,
		0, 1,
		x, y,
	}
}

// Scale2D returns a Matrix2 2D matrix with given scaling factors
func Scale2D(x, y float32) Matrix2 {
	return Matrix2{
		x, 0,
		0, y,
		0, 0,
	}
}

// Rotate2D returns a Matrix2 2D matrix with given rotation, specified in radians.
func Rotate2D(angle float32) Matrix2 {
	c := Cos(angle)
	s := Sin(angle)
	return Matrix2{
		c, s,
		-s, c,
		0, 0,
	}
}

// Skew2D returns a Matrix2 2D matrix with given skew angles, in radians.
func Skew2D(x, y float32) Matrix2 {
	return Matrix2{
		1, Tan(y),
		Tan(x), 1,
		0, 0,
	}
}

// IsIdentity returns true if the Matrix is the identity matrix.
func (a Matrix2) IsIdentity() bool {
	return a == Identity2()
}

// Mul returns a * b. When applied to a point, b is applied first and
// then a, so the multiplication order is the reverse of the logical order.
func (a Matrix2) Mul(b Matrix2) Matrix2 {
	return Matrix2{
		XX: a.XX*b.XX + a.XY*b.YX,
		YX: a.YX*b.XX + a.YY*b.YX,
		XY: a.XX*b.XY + a.XY*b.YY,
		YY: a.YX*b.XY + a.YY*b.YY,
		X0: a.XX*b.X0 + a.XY*b.Y0 + a.X0,
		Y0: a.YX*b.X0 + a.YY*b.Y0 + a.Y0,
	}
}

// SetMul sets a to a * b.
func (a *Matrix2) SetMul(b Matrix2) {
	*a = a.Mul(b)
}

// MulVector2AsPoint multiplies the Vector2 as a point, including adding translations.
func (a Matrix2) MulVector2AsPoint(v Vector2) Vector2 {
	tx := a.XX*v.X + a.XY*v.Y
	ty := a.YX*v.X + a.YY*v.Y
	return Vec2(tx+a.X0, ty+a.Y0)
}

// Translate returns a*Translate2D(x, y).
func (a Matrix2) Translate(x, y float32) Matrix2 {
	return a.Mul(Translate2D(x, y))
}

// Scale returns a*Scale2D(x, y).
func (a Matrix2) Scale(x, y float32) Matrix2 {
	return a.Mul(Scale2D(x, y))
}

// Rotate returns a*Rotate2D(angle).
func (a Matrix2) Rotate(angle float32) Matrix2 {
	return a.Mul(Rotate2D(angle))
}

// Det returns the determinant of the linear part of the matrix.
func (a Matrix2) Det() float32 {
	return a.XX*a.YY - a.XY*a.YX
}

// Inverse returns inverse of matrix, for inverting transforms.
// A singular matrix yields the identity.
func (a Matrix2) Inverse() Matrix2 {
	det := a.Det()
	if det == 0 {
		return Identity2()
	}
	d := 1 / det
	return Matrix2{
		XX: a.YY * d,
		YX: 0 - a.YX*d,
		XY: 0 - a.XY*d,
		YY: a.XX * d,
		X0: (a.XY*a.Y0 - a.YY*a.X0) * d,
		Y0: (a.YX*a.X0 - a.XX*a.Y0) * d,
	}
}

// SetString processes the standard SVG-style transform strings,
// which are a space- or comma-separated list of transform functions
// applied in left-to-right order: the resulting matrix is the product
// of the individual matrices in the order given.
// "none" and the empty string give the identity matrix.
// On error, the matrix is set to the identity.
func (a *Matrix2) SetString(str string) error {
	*a = Identity2()
	str = strings.TrimSpace(str)
	if str == "" || strings.EqualFold(str, "none") {
		return nil
	}
	res := Identity2()
	rest := str
	for {
		rest = strings.TrimLeft(rest, " \t\r\n,")
		if rest == "" {
			break
		}
		op, after, ok := strings.Cut(rest, "(")
		if !ok {
			return fmt.Errorf("math32.Matrix2.SetString: missing '(' in transform %q", str)
		}
		argStr, tail, ok := strings.Cut(after, ")")
		if !ok {
			return fmt.Errorf("math32.Matrix2.SetString: missing ')' in transform %q", str)
		}
		rest = tail
		op = strings.ToLower(strings.TrimSpace(op))
		args := ReadPoints(argStr)
		if args == nil && strings.TrimSpace(argStr) != "" {
			return fmt.Errorf("math32.Matrix2.SetString: invalid arguments %q in transform %q", argStr, str)
		}
		m, err := transformFunc(op, args)
		if err != nil {
			return fmt.Errorf("math32.Matrix2.SetString: %w in transform %q", err, str)
		}
		res = res.Mul(m)
	}
	*a = res
	return nil
}

func transformFunc(op string, args []float32) (Matrix2, error) {
	n := len(args)
	switch op {
	case "matrix":
		if n == 6 {
			return Matrix2{args[0], args[1], args[2], args[3], args[4], args[5]}, nil
		}
	case "translate":
		switch n {
		case 1:
			return Translate2D(args[0], 0), nil
		case 2:
			return Translate2D(args[0], args[1]), nil
		}
	case "scale":
		switch n {
		case 1:
			return Scale2D(args[0], args[0]), nil
		case 2:
			return Scale2D(args[0], args[1]), nil
		}
	case "rotate":
		switch n {
		case 1:
			return Rotate2D(DegToRad(args[0])), nil
		case 3:
			return Translate2D(args[1], args[2]).Rotate(DegToRad(args[0])).Translate(-args[1], -args[2]), nil
		}
	case "skewx":
		if n == 1 {
			return Skew2D(DegToRad(args[0]), 0), nil
		}
	case "skewy":
		if n == 1 {
			return Skew2D(0, DegToRad(args[0])), nil
		}
	default:
		return Identity2(), fmt.Errorf("unknown transform function %q", op)
	}
	return Identity2(), fmt.Errorf("wrong number of arguments (%d) for %q", n, op)
}

// String returns the XML-based string representation of the transform,
// using the most compact form: "none" for the identity, translate and
// scale where the matrix has no rotation or skew, and matrix otherwise.
func (a Matrix2) String() string {
	if a.IsIdentity() {
		return "none"
	}
	if a.YX == 0 && a.XY == 0 {
		hasTrans := a.X0 != 0 || a.Y0 != 0
		hasScale := a.XX != 1 || a.YY != 1
		switch {
		case hasTrans && hasScale:
			return fmt.Sprintf("translate(%s,%s) scale(%s,%s)", FormatFloat32(a.X0), FormatFloat32(a.Y0), FormatFloat32(a.XX), FormatFloat32(a.YY))
		case hasTrans:
			return fmt.Sprintf("translate(%s,%s)", FormatFloat32(a.X0), FormatFloat32(a.Y0))
		default:
			return fmt.Sprintf("scale(%s,%s)", FormatFloat32(a.XX), FormatFloat32(a.YY))
		}
	}
	return a.MatrixString()
}

// MatrixString always returns the matrix(a,b,c,d,e,f) form.
func (a Matrix2) MatrixString() string {
	return fmt.Sprintf("matrix(%s,%s,%s,%s,%s,%s)", FormatFloat32(a.XX), FormatFloat32(a.YX), FormatFloat32(a.XY), FormatFloat32(a.YY), FormatFloat32(a.X0), FormatFloat32(a.Y0))
}

// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"fmt"
	"strings"

	"github.com/latexformula/latexformula/math32"
)

// standard conversion factors -- Px = CSS pixel, 1/96 in
const (
	PxPerInch = 96.0
	MmPerInch = 25.4
	CmPerInch = 2.54
	QPerInch  = 101.6
	PtPerInch = 72.0
	PcPerInch = 6.0
)

// pxPerUnit is the number of px in one of each absolute unit.
var pxPerUnit = map[string]float32{
	"":   1,
	"px": 1,
	"in": PxPerInch,
	"cm": PxPerInch / CmPerInch,
	"mm": PxPerInch / MmPerInch,
	"q":  PxPerInch / QPerInch,
	"pt": PxPerInch / PtPerInch,
	"pc": PxPerInch / PcPerInch,
}

// ParseLength parses a length with an optional absolute unit,
// such as "210mm", "1cm" or "744.09", into its value and lowercase unit.
func ParseLength(str string) (float32, string, error) {
	s := strings.TrimSpace(str)
	i := len(s)
	for i > 0 {
		c := s[i-1]
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '%' {
			i--
			continue
		}
		break
	}
	unit := strings.ToLower(s[i:])
	val, err := math32.ParseFloat32(strings.TrimSpace(s[:i]))
	if err != nil {
		return 0, "", fmt.Errorf("svg.ParseLength: invalid length %q", str)
	}
	if _, ok := pxPerUnit[unit]; !ok {
		return 0, "", fmt.Errorf("svg.ParseLength: unsupported unit %q in %q", unit, str)
	}
	return val, unit, nil
}

// ToPx converts a length string with an absolute unit to CSS px.
func ToPx(str string) (float32, error) {
	val, unit, err := ParseLength(str)
	if err != nil {
		return 0, err
	}
	return val * pxPerUnit[unit], nil
}

// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// namedColors are the color keywords that the PostScript to SVG
// converters are known to emit.
var namedColors = map[string]string{
	"black":   "#000000",
	"white":   "#ffffff",
	"red":     "#ff0000",
	"lime":    "#00ff00",
	"green":   "#008000",
	"blue":    "#0000ff",
	"yellow":  "#ffff00",
	"cyan":    "#00ffff",
	"magenta": "#ff00ff",
	"fuchsia": "#ff00ff",
	"gray":    "#808080",
	"grey":    "#808080",
}

// ParseColor parses an SVG paint color: #rgb, #rrggbb, rgb(r,g,b) with
// numbers or percentages, or one of the basic color keywords.
// It returns false for "none", paint servers (url(...)) and anything
// it does not understand.
func ParseColor(str string) (colorful.Color, bool) {
	s := strings.ToLower(strings.TrimSpace(str))
	if hex, ok := namedColors[s]; ok {
		s = hex
	}
	switch {
	case strings.HasPrefix(s, "#"):
		c, err := colorful.Hex(s)
		if err != nil {
			return colorful.Color{}, false
		}
		return c, true
	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		parts := strings.Split(s[4:len(s)-1], ",")
		if len(parts) != 3 {
			return colorful.Color{}, false
		}
		var v [3]float64
		for i, p := range parts {
			p = strings.TrimSpace(p)
			div := 255.0
			if strings.HasSuffix(p, "%") {
				p = strings.TrimSuffix(p, "%")
				div = 100
			}
			f, err := strconv.ParseFloat(p, 64)
			if err != nil {
				return colorful.Color{}, false
			}
			v[i] = min(max(f/div, 0), 1)
		}
		return colorful.Color{R: v[0], G: v[1], B: v[2]}, true
	}
	return colorful.Color{}, false
}

// ColorsMatch returns whether the two colors are within the given
// Euclidean distance in RGB space, where each channel is in [0,1].
func ColorsMatch(a, b colorful.Color, tol float64) bool {
	return a.DistanceRgb(b) <= tol
}

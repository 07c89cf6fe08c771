// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calibrate

import (
	"strings"
	"testing"

	"github.com/latexformula/latexformula/math32"
	"github.com/latexformula/latexformula/svg"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var marker, _ = colorful.Hex("#fe01fd")

func parse(t *testing.T, s string) *svg.Node {
	t.Helper()
	doc, err := svg.ReadXML(strings.NewReader(s))
	require.NoError(t, err)
	return doc.Root
}

func TestLocate(t *testing.T) {
	root := parse(t, `<svg><g><path d="M 5 5 L 6 6" fill="black"/><g><polygon points="0,0 1,0 1,1 0,1" fill="#fe01fd"/></g></g></svg>`)
	for _, fs := range []float32{10, 12, 5} {
		cal, node, ok := Locate(root, marker, 10, fs)
		require.True(t, ok)
		require.NotNil(t, node)
		assert.Equal(t, svg.Polygon, node.Kind())
		assert.InDelta(t, 10*fs/10, cal.Scale, 1e-5)
		assert.Equal(t, float32(0), cal.AnchorX)
		assert.Equal(t, float32(0), cal.AnchorY)
	}
}

func TestLocateOutputUnits(t *testing.T) {
	// 1cm in pt, at an offset, with the color in the style attribute
	root := parse(t, `<svg><polygon points="72,720 100.3465,720 100.3465,691.6535 72,691.6535" style="fill:#fd02fc;stroke:none"/></svg>`)
	cal, _, ok := Locate(root, marker, 37.795277, 10)
	require.True(t, ok)
	assert.InDelta(t, 37.795277/28.3465, cal.Scale, 1e-4)
	assert.Equal(t, float32(72), cal.AnchorX)
	assert.Equal(t, float32(720), cal.AnchorY)

	// path markers use their vertices
	root = parse(t, `<svg><path d="M 10,20 H 12 V 18 H 10 Z" fill="#fe01fd"/></svg>`)
	cal, _, ok = Locate(root, marker, 1, 10)
	require.True(t, ok)
	assert.InDelta(t, 0.5, cal.Scale, 1e-6)
	assert.Equal(t, float32(10), cal.AnchorX)
	assert.Equal(t, float32(20), cal.AnchorY)
}

func TestLocateFirstMatch(t *testing.T) {
	root := parse(t, `<svg><g><polygon id="a" points="0,0 2,0 2,2" fill="#fe01fd"/></g><polygon id="b" points="0,0 1,0 1,1" fill="#fe01fd"/></svg>`)
	_, node, ok := Locate(root, marker, 1, 10)
	require.True(t, ok)
	assert.Equal(t, "a", node.ID())
}

func TestLocateNoMarker(t *testing.T) {
	root := parse(t, `<svg><g><path d="M 0 0 L 1 1" fill="#ff00ff"/><polygon points="0,0 1,0 1,1" fill="none"/></g></svg>`)
	cal, node, ok := Locate(root, marker, 10, 10)
	assert.False(t, ok)
	assert.Nil(t, node)
	assert.Equal(t, Calibration{}, cal)
	assert.Equal(t, Calibration{Scale: 1}, Default)
}

func TestLocateDegenerate(t *testing.T) {
	tests := []string{
		`<svg><polygon points="0,0 1,0" fill="#fe01fd"/></svg>`,
		`<svg><polygon points="0,0 0,1 0,2" fill="#fe01fd"/></svg>`,
		`<svg><polygon points="0,0 1,x" fill="#fe01fd"/></svg>`,
		`<svg><rect width="1" height="1" fill="#fe01fd"/></svg>`,
	}
	for _, test := range tests {
		_, node, ok := Locate(parse(t, test), marker, 10, 10)
		assert.False(t, ok, test)
		assert.NotNil(t, node, test)
	}
}

func TestMatrix(t *testing.T) {
	cal := Calibration{Scale: 2, AnchorX: 100, AnchorY: 200}
	m := cal.Matrix()
	assert.Equal(t, "matrix(2,0,0,-2,-200,400)", m.MatrixString())
	assert.Equal(t, math32.Vec2(0, 0), m.MulVector2AsPoint(math32.Vec2(100, 200)))
	assert.Equal(t, math32.Vec2(2, -2), m.MulVector2AsPoint(math32.Vec2(101, 201)))
}

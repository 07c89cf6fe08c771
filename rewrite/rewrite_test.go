// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rewrite

import (
	"bytes"
	"strings"
	"testing"

	"github.com/latexformula/latexformula/calibrate"
	"github.com/latexformula/latexformula/math32"
	"github.com/latexformula/latexformula/svg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, s string) *svg.Node {
	t.Helper()
	doc, err := svg.ReadXML(strings.NewReader(s))
	require.NoError(t, err)
	return doc.Root
}

func write(t *testing.T, n *svg.Node) string {
	t.Helper()
	var b bytes.Buffer
	require.NoError(t, svg.WriteNode(&b, n))
	return b.String()
}

func TestTreeIdentity(t *testing.T) {
	src := parse(t, `<svg width="8in" id="body"><path d="M 0 0 L 1 1" fill="black"/><polyline points="0,0 1,1"/><polygon points="0,0 1,0 1,1" stroke="none"/></svg>`)
	out := Tree(src, &Options{Calibration: calibrate.Default, LayerTransform: math32.Identity2()})
	assert.Empty(t, out.Attr)
	assert.Equal(t, `<g><path d="M 0 0 L 1 1" fill="black"/><polyline points="0,0 1,1"/><polygon points="0,0 1,0 1,1" stroke="none"/></g>`, write(t, out))

	// the source is not modified
	assert.Len(t, src.Attr, 2)
	assert.Len(t, src.Children, 3)
	for _, c := range out.Children {
		assert.Same(t, out, c.Parent)
	}
}

func TestTreeFilter(t *testing.T) {
	src := parse(t, `<svg>
<title>drawing</title>
<text x="0"><tspan>x</tspan></text>
<g id="a"><rect width="1"/><path id="p" d="M 0 0"/><g id="b"><polygon points="0,0 1,0 1,1"/><image href="x.png"/></g></g>
<!-- comment -->
</svg>`)
	out := Tree(src, &Options{Calibration: calibrate.Default, LayerTransform: math32.Identity2(), Formula: "$x$"})
	xf := "matrix(1,0,0,-1,0,0)"
	assert.Equal(t, `<g><g id="a" transform="`+xf+`" latexformula:formula="$x$"><path id="p" d="M 0 0"/><g id="b" transform="`+xf+`" latexformula:formula="$x$"><polygon points="0,0 1,0 1,1"/></g></g></g>`, write(t, out))
}

func TestTreeMarker(t *testing.T) {
	src := parse(t, `<svg><g transform="scale(0.001)"><polygon points="100,200 150,200 150,150" fill="#fe01fd"/><path d="M 0 0" fill="#fe01fd"/></g></svg>`)
	marker := src.Elements()[0].Elements()[0]
	out := Tree(src, &Options{
		Calibration:    calibrate.Calibration{Scale: 0.2, AnchorX: 100, AnchorY: 200},
		LayerTransform: math32.Identity2(),
		Marker:         marker,
	})
	g := out.Elements()[0]
	// only the marker node itself is pruned, not a same colored shape
	require.Len(t, g.Elements(), 1)
	assert.Equal(t, svg.Path, g.Elements()[0].Kind())
	xf, _ := g.AttrValue("transform")
	assert.Equal(t, "matrix(0.2,0,0,-0.2,-20,40)", xf)
}

func TestGroupTransform(t *testing.T) {
	cal := calibrate.Calibration{Scale: 2, AnchorX: 7, AnchorY: 11}
	assert.Equal(t, "translate(-5,-3) matrix(2,0,0,-2,-14,22)", GroupTransform(math32.Translate2D(5, 3), cal))
	assert.Equal(t, "matrix(2,0,0,-2,-14,22)", GroupTransform(math32.Identity2(), cal))
	assert.Equal(t, "scale(0.5,0.5) matrix(2,0,0,-2,-14,22)", GroupTransform(math32.Scale2D(2, 2), cal))

	src := parse(t, `<svg><g/></svg>`)
	out := Tree(src, &Options{Calibration: cal, LayerTransform: math32.Translate2D(5, 3)})
	xf, _ := out.Elements()[0].AttrValue("transform")
	assert.Equal(t, "translate(-5,-3) matrix(2,0,0,-2,-14,22)", xf)
}

func TestTreePrefix(t *testing.T) {
	src := parse(t, `<svg><g xml:space="preserve"><path xlink:href="#a" d="M 0 0"/></g></svg>`)
	out := Tree(src, &Options{SVGPrefix: "svg", Calibration: calibrate.Default, LayerTransform: math32.Identity2()})
	assert.Equal(t, "svg:g", out.QName())
	assert.Equal(t, "svg:g", out.Elements()[0].QName())
	assert.Equal(t, "svg:path", out.Elements()[0].Elements()[0].QName())
	assert.Equal(t, []string{"latexformula", "xlink"}, AttrPrefixes(out))
}

func TestTreeAttrPrefix(t *testing.T) {
	src := parse(t, `<svg><g id="a"/></svg>`)
	out := Tree(src, &Options{AttrPrefix: "latexformula1", Calibration: calibrate.Default, LayerTransform: math32.Identity2(), Formula: "$y$"})
	g := out.Elements()[0]
	v, ok := g.AttrValue("latexformula1:formula")
	assert.True(t, ok)
	assert.Equal(t, "$y$", v)
	_, ok = g.AttrValue("latexformula:formula")
	assert.False(t, ok)
}

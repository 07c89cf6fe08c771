// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"strings"
	"testing"

	"github.com/latexformula/latexformula/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrentLayer(t *testing.T) {
	doc, err := ReadXML(strings.NewReader(inkscapeDoc))
	require.NoError(t, err)
	assert.Equal(t, "layer2", doc.CurrentLayer().ID())

	// without a namedview, the last layer is used
	doc, err = ReadXML(strings.NewReader(`<svg xmlns="http://www.w3.org/2000/svg" xmlns:inkscape="http://www.inkscape.org/namespaces/inkscape">
<g id="a" inkscape:groupmode="layer"/><g id="b" inkscape:groupmode="layer"/><g id="c"/></svg>`))
	require.NoError(t, err)
	assert.Equal(t, "b", doc.CurrentLayer().ID())

	// no layers at all
	doc, err = ReadXML(strings.NewReader(`<svg xmlns="http://www.w3.org/2000/svg"><g id="c"/></svg>`))
	require.NoError(t, err)
	assert.Same(t, doc.Root, doc.CurrentLayer())
}

func TestLayerTransform(t *testing.T) {
	doc, err := ReadXML(strings.NewReader(inkscapeDoc))
	require.NoError(t, err)
	xf, err := doc.LayerTransform()
	require.NoError(t, err)
	assert.Equal(t, math32.Translate2D(5, 3), xf)

	doc, err = ReadXML(strings.NewReader(`<svg xmlns="http://www.w3.org/2000/svg" xmlns:inkscape="http://www.inkscape.org/namespaces/inkscape" xmlns:sodipodi="http://sodipodi.sourceforge.net/DTD/sodipodi-0.dtd">
<sodipodi:namedview inkscape:current-layer="sub"/>
<g id="top" transform="translate(10,0)"><g id="sub" transform="scale(2)"/></g></svg>`))
	require.NoError(t, err)
	assert.Equal(t, "sub", doc.CurrentLayer().ID())
	xf, err = doc.LayerTransform()
	require.NoError(t, err)
	assert.Equal(t, math32.Matrix2{XX: 2, YY: 2, X0: 10}, xf)

	doc.CurrentLayer().SetAttr("transform", "bogus(1)")
	_, err = doc.LayerTransform()
	assert.Error(t, err)
}

func TestUnitToUU(t *testing.T) {
	doc := NewDocument()
	uu, err := doc.UnitToUU("1cm")
	require.NoError(t, err)
	assert.InDelta(t, 10, uu, 1e-4)

	uu, err = doc.UnitToUU("1in")
	require.NoError(t, err)
	assert.InDelta(t, 25.4, uu, 1e-4)

	// px user units
	doc.Root.SetAttr("width", "744.09448")
	doc.Root.SetAttr("viewBox", "0 0 744.09448 1052.3622")
	uu, err = doc.UnitToUU("1cm")
	require.NoError(t, err)
	assert.InDelta(t, 37.795276, uu, 1e-3)

	doc.Root.DeleteAttr("viewBox")
	uu, err = doc.UnitToUU("1pt")
	require.NoError(t, err)
	assert.InDelta(t, 96.0/72, uu, 1e-5)

	_, err = doc.UnitToUU("1furlong")
	assert.Error(t, err)
}

func TestEnsureNamespace(t *testing.T) {
	doc := NewDocument()
	assert.Equal(t, "latexformula", doc.EnsureNamespace("latexformula", "http://example.org/latexformula"))
	uri, ok := doc.Root.LookupPrefix("latexformula")
	assert.True(t, ok)
	assert.Equal(t, "http://example.org/latexformula", uri)

	n := len(doc.Root.Attr)
	assert.Equal(t, "latexformula", doc.EnsureNamespace("lf", "http://example.org/latexformula"))
	assert.Len(t, doc.Root.Attr, n)

	// the prefix is taken by another namespace
	assert.Equal(t, "latexformula1", doc.EnsureNamespace("latexformula", "http://example.org/other"))
	uri, _ = doc.Root.LookupPrefix("latexformula")
	assert.Equal(t, "http://example.org/latexformula", uri)
	uri, _ = doc.Root.LookupPrefix("latexformula1")
	assert.Equal(t, "http://example.org/other", uri)
	assert.Equal(t, "latexformula2", doc.EnsureNamespace("latexformula", "http://example.org/third"))
}

func TestRenameAttrPrefix(t *testing.T) {
	g := NewElement("", "g")
	g.SetAttr("xlink:href", "#a")
	p := NewElement("", "path")
	p.SetAttr("xlink:title", "b")
	p.SetAttr("d", "M 0 0")
	g.AddChild(p)
	g.RenameAttrPrefix("xlink", "xl")
	_, ok := g.AttrValue("xlink:href")
	assert.False(t, ok)
	v, _ := g.AttrValue("xl:href")
	assert.Equal(t, "#a", v)
	v, _ = p.AttrValue("xl:title")
	assert.Equal(t, "b", v)
	v, _ = p.AttrValue("d")
	assert.Equal(t, "M 0 0", v)
}

func TestAppendToCurrentLayer(t *testing.T) {
	doc := NewDocument()
	g := NewElement(doc.SVGPrefix(), "g")
	g.SetAttr("latexformula:formula", "$x$")
	layer := doc.AppendToCurrentLayer(g)
	assert.Equal(t, "layer1", layer.ID())
	assert.Same(t, layer, g.Parent)
	assert.Same(t, g, layer.Elements()[len(layer.Elements())-1])
}

// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const inkscapeDoc = `<?xml version="1.0" encoding="UTF-8" standalone="no"?>
<!-- Created with Inkscape (http://www.inkscape.org/) -->
<svg xmlns:dc="http://purl.org/dc/elements/1.1/" xmlns:svg="http://www.w3.org/2000/svg" xmlns="http://www.w3.org/2000/svg" xmlns:sodipodi="http://sodipodi.sourceforge.net/DTD/sodipodi-0.dtd" xmlns:inkscape="http://www.inkscape.org/namespaces/inkscape" width="210mm" height="297mm" viewBox="0 0 210 297" version="1.1">
  <sodipodi:namedview id="base" inkscape:document-units="mm" inkscape:current-layer="layer2"/>
  <g inkscape:label="Layer 1" inkscape:groupmode="layer" id="layer1">
    <rect id="r1" x="10" y="10" width="5" height="5" style="fill:#ff0000"/>
  </g>
  <g inkscape:label="Layer 2" inkscape:groupmode="layer" id="layer2" transform="translate(5,3)">
    <path id="p1" d="M 0,0 L 10,0 L 10,10 Z"/>
    <text id="t1">a &amp; b</text>
  </g>
</svg>
`

func TestReadWriteRoundTrip(t *testing.T) {
	doc, err := ReadXML(strings.NewReader(inkscapeDoc))
	require.NoError(t, err)
	require.NotNil(t, doc.Root)
	assert.Equal(t, "svg", doc.Root.QName())
	assert.Len(t, doc.Root.Elements(), 3)

	var b bytes.Buffer
	require.NoError(t, doc.WriteXML(&b))
	assert.Equal(t, inkscapeDoc, b.String())
}

func TestReadXMLPrefixes(t *testing.T) {
	doc, err := ReadXML(strings.NewReader(`<svg:svg xmlns:svg="http://www.w3.org/2000/svg"><svg:g id="a"/></svg:svg>`))
	require.NoError(t, err)
	assert.Equal(t, "svg:svg", doc.Root.QName())
	assert.Equal(t, "svg", doc.SVGPrefix())
	g := doc.Root.Elements()[0]
	assert.Equal(t, Group, g.Kind())
	assert.Equal(t, "a", g.ID())

	var b bytes.Buffer
	require.NoError(t, doc.WriteXML(&b))
	assert.Equal(t, `<svg:svg xmlns:svg="http://www.w3.org/2000/svg"><svg:g id="a"/></svg:svg>`, b.String())
}

func TestReadXMLErrors(t *testing.T) {
	tests := []string{
		"",
		"<!-- only a comment -->",
		"<svg></svg><svg></svg>",
		"<svg><g></svg>",
	}
	for _, test := range tests {
		_, err := ReadXML(strings.NewReader(test))
		assert.Error(t, err, test)
	}
}

func TestSaveOpenXML(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "drawing.svg")
	doc := NewDocument()
	require.NoError(t, doc.SaveXML(fn))

	got, err := OpenXML(fn)
	require.NoError(t, err)
	assert.Equal(t, "layer1", got.CurrentLayer().ID())

	_, err = OpenXML(filepath.Dir(fn))
	assert.Error(t, err)
}

func TestWriteNodeEscapes(t *testing.T) {
	n := NewElement("", "g")
	n.SetAttr("latexformula:formula", `a<b & "c"`)
	var b bytes.Buffer
	require.NoError(t, WriteNode(&b, n))
	assert.Equal(t, `<g latexformula:formula="a&lt;b &amp; &quot;c&quot;"/>`, b.String())
}

// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStyleProperties(t *testing.T) {
	props := StyleProperties("fill:#fe01fd; stroke : none;FILL-OPACITY:1")
	assert.Equal(t, map[string]string{"fill": "#fe01fd", "stroke": "none", "fill-opacity": "1"}, props)
	assert.Empty(t, StyleProperties("  "))
}

func TestProperty(t *testing.T) {
	n := NewElement("", "polygon")
	n.SetAttr("fill", "#000000")
	v, ok := n.Property("fill")
	assert.True(t, ok)
	assert.Equal(t, "#000000", v)

	n.SetAttr("style", "fill:#fe01fd")
	v, ok = n.Property("fill")
	assert.True(t, ok)
	assert.Equal(t, "#fe01fd", v)

	_, ok = n.Property("stroke")
	assert.False(t, ok)
}

func TestParseColor(t *testing.T) {
	marker, ok := ParseColor("#fe01fd")
	require.True(t, ok)

	tests := []struct {
		str   string
		ok    bool
		match bool
	}{
		{"#FE01FD", true, true},
		{"rgb(254,1,253)", true, true},
		{"rgb(99.6%, 0.4%, 99.2%)", true, true},
		{"#fd02fc", true, true},
		{"magenta", true, false},
		{"#000", true, false},
		{"none", false, false},
		{"url(#grad)", false, false},
		{"rgb(1,2)", false, false},
	}
	for _, test := range tests {
		c, ok := ParseColor(test.str)
		assert.Equal(t, test.ok, ok, test.str)
		if ok {
			assert.Equal(t, test.match, ColorsMatch(marker, c, 0.007), test.str)
		}
	}
	assert.True(t, ColorsMatch(colorful.Color{R: 1}, colorful.Color{R: 1}, 0))
}

// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package svg provides an SVG element tree with lossless XML I/O, and the
host document operations needed to place new geometry into an Inkscape
drawing: finding the current layer, its cumulative transform, and
converting lengths with units into document user units.

Element and attribute names are kept exactly as written, including their
namespace prefixes (xml.Name.Space holds the prefix, not the URI), so that
a document can be read, modified and written back without disturbing
the namespace declarations of the host application. Comments, processing
instructions and character data are preserved as well.

The [Kind] of a node is determined by its local name only; [Group],
[Path], [Polyline] and [Polygon] are the geometry kinds that survive
an import, and everything else is [Other].
*/
package svg

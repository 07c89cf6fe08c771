// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pipeline runs the external programs that convert a LaTeX
// source file into SVG: latex to DVI, dvips to PostScript and
// pstoedit to SVG. The stages run strictly in sequence in a single
// working directory, and the pipeline stops at the first stage whose
// output is missing or malformed.
package pipeline

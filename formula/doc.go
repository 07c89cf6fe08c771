// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package formula imports LaTeX formulas into SVG documents: it writes
// the LaTeX source, runs the conversion pipeline, calibrates and
// rewrites the resulting geometry, and appends it to the current layer
// of the document.
package formula

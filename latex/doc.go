// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package latex writes the LaTeX source for a formula, including the
// calibration marker that is used to recover the scale and origin of
// the converted geometry, and filters the compiler log for errors.
package latex

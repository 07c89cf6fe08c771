// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pipeline

import (
	"bytes"

	"github.com/h2non/filetype"
	"github.com/h2non/filetype/types"
)

// Stage is one step of the conversion pipeline.
type Stage int32

const (
	// Compile runs latex to produce a DVI file.
	Compile Stage = iota

	// Convert runs dvips to produce an encapsulated PostScript file.
	Convert

	// Vectorize runs pstoedit to produce an SVG file.
	Vectorize
)

// Stages are all of the stages, in the order they are run.
var Stages = []Stage{Compile, Convert, Vectorize}

var stageNames = [...]string{
	Compile:   "latex",
	Convert:   "dvips",
	Vectorize: "pstoedit",
}

// String returns the name of the program run by the stage.
func (st Stage) String() string {
	if st < 0 || int(st) >= len(stageNames) {
		return "unknown"
	}
	return stageNames[st]
}

// Ext returns the file extension of the output of the stage.
func (st Stage) Ext() string {
	switch st {
	case Compile:
		return ".dvi"
	case Convert:
		return ".ps"
	}
	return ".svg"
}

var (
	// DVIType is the file type of DVI files.
	DVIType = filetype.NewType("dvi", "application/x-dvi")

	// PSType is the file type of (encapsulated) PostScript files.
	PSType = filetype.NewType("eps", "application/postscript")
)

func init() {
	// preamble opcode followed by the DVI format identifier
	filetype.AddMatcher(DVIType, func(buf []byte) bool {
		return len(buf) > 1 && buf[0] == 0xf7 && buf[1] == 0x02
	})
	filetype.AddMatcher(PSType, func(buf []byte) bool {
		return bytes.HasPrefix(buf, []byte("%!"))
	})
}

// kind returns the file type that the output of the stage must have,
// or [types.Unknown] if it is checked in another way.
func (st Stage) kind() types.Type {
	switch st {
	case Compile:
		return DVIType
	case Convert:
		return PSType
	}
	return types.Unknown
}

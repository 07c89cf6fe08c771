// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pipelinetest provides fake latex, dvips and pstoedit programs,
// written as shell scripts, for testing code that runs the pipeline.
package pipelinetest

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/latexformula/latexformula/pipeline"
)

// BadFormula makes the fake latex fail when it appears in the source.
const BadFormula = `\undefinedcs`

// SVG is the default output of the fake pstoedit, in the format of the
// plot-svg driver. The calibration marker spans 50 units and its first
// point is (100,200).
const SVG = `<?xml version="1.0" encoding="utf-8" standalone="no"?>
<!DOCTYPE svg PUBLIC "-//W3C//DTD SVG 1.1//EN" "http://www.w3.org/Graphics/SVG/1.1/DTD/svg11.dtd">
<svg version="1.1" baseProfile="full" id="body" width="8in" height="8in" viewBox="0 0 1 1" preserveAspectRatio="none" xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" xmlns:ev="http://www.w3.org/2001/xml-events">
<title>SVG drawing</title>
<desc>This was produced by version 4.4 of GNU libplot, a free library for exporting 2-D vector graphics.</desc>
<rect id="background" x="0" y="0" width="1" height="1" stroke="none" fill="white"/>
<g id="content" transform="translate(0,1) scale(1,-1) scale(0.001)" xml:space="preserve" stroke="black" fill="none" fill-rule="even-odd">
<polygon points="100,200 150,200 150,150 100,150 " stroke="none" fill="#fe01fd"/>
<path d="M 160,190 L 170,190 L 170,180 Z" stroke="none" fill="black"/>
<g id="sub"><polyline points="160,170 180,175" fill="none"/></g>
</g>
</svg>
`

// Options control the behavior of the fake programs.
type Options struct {

	// FailDvips makes dvips exit with an error without writing output.
	FailDvips bool

	// FailPstoedit makes pstoedit exit with an error without writing output.
	FailPstoedit bool

	// SVG is the output of pstoedit; [SVG] if empty.
	SVG string

	// PstoeditVersion is the version reported by pstoedit; 3.78 if empty.
	PstoeditVersion string
}

// Fake is a set of installed fake programs.
type Fake struct {

	// Dir is the directory containing the programs.
	Dir string

	// Tools are the commands that run the programs.
	Tools pipeline.Tools
}

const latexScript = `#!/bin/sh
echo latex >> "@CALLS@"
if [ "$1" = "--version" ]; then
	echo "pdfTeX 3.141592653-2.6-1.40.25 (TeX Live 2023)"
	exit 0
fi
out=.
for a in "$@"; do
	case "$a" in
	-output-directory=*) out="${a#-output-directory=}" ;;
	esac
	tex="$a"
done
name=$(basename "$tex" .tex)
echo "This is pdfTeX, Version 3.141592653-2.6-1.40.25 (TeX Live 2023) (preloaded format=latex)"
echo "($tex"
if grep -q 'undefinedcs' "$tex"; then
	printf '%s\n' '! Undefined control sequence.' 'l.15 \undefinedcs' 'No pages of output.'
	exit 1
fi
printf '\367\002\001\203\222\300\034\073' > "$out/$name.dvi"
echo "Output written on $name.dvi (1 page, 412 bytes)."
`

const dvipsScript = `#!/bin/sh
echo dvips >> "@CALLS@"
if [ "$1" = "--version" ]; then
	echo "This is dvips(k) 2023.1 (TeX Live 2023)  Copyright 2023 Radical Eye Software"
	exit 0
fi
@FAIL@
while [ $# -gt 0 ]; do
	case "$1" in
	-o) shift; ps="$1" ;;
	-D|-y) shift ;;
	*) dvi="$1" ;;
	esac
	shift
done
[ -f "$dvi" ] || { echo "dvips: DVI file can't be opened: $dvi" >&2; exit 1; }
printf '%s\n' '%!PS-Adobe-3.0 EPSF-3.0' '%%BoundingBox: 0 0 100 100' > "$ps"
`

const pstoeditScript = `#!/bin/sh
echo pstoedit >> "@CALLS@"
echo "pstoedit: version @VERSION@ / DLL interface 108 : Copyright (C) 1993 - 2023 Wolfgang Glunz" >&2
if [ "$1" = "-help" ]; then
	exit 1
fi
@FAIL@
for a in "$@"; do
	ps="$svg"
	svg="$a"
done
[ -f "$ps" ] || { echo "pstoedit: could not open $ps" >&2; exit 1; }
cp "@SVGFILE@" "$svg"
`

const failLine = `echo "fatal error" >&2; exit 1`

// New installs the fake programs in a temporary directory.
// It skips the test where no POSIX shell is available.
func New(t testing.TB, opts Options) *Fake {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake programs are shell scripts")
	}
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not found")
	}
	f := &Fake{Dir: t.TempDir()}
	if opts.SVG == "" {
		opts.SVG = SVG
	}
	if opts.PstoeditVersion == "" {
		opts.PstoeditVersion = "3.78"
	}
	svgFile := filepath.Join(f.Dir, "output.svg")
	if err := os.WriteFile(svgFile, []byte(opts.SVG), 0o666); err != nil {
		t.Fatal(err)
	}
	fail := func(b bool) string {
		if b {
			return failLine
		}
		return ""
	}
	r := strings.NewReplacer(
		"@CALLS@", f.callsFile(),
		"@SVGFILE@", svgFile,
		"@VERSION@", opts.PstoeditVersion,
	)
	f.Tools = pipeline.Tools{
		Latex:    f.install(t, "latex", r.Replace(latexScript)),
		Dvips:    f.install(t, "dvips", r.Replace(strings.Replace(dvipsScript, "@FAIL@", fail(opts.FailDvips), 1))),
		Pstoedit: f.install(t, "pstoedit", r.Replace(strings.Replace(pstoeditScript, "@FAIL@", fail(opts.FailPstoedit), 1))),
	}
	return f
}

func (f *Fake) callsFile() string {
	return filepath.Join(f.Dir, "calls")
}

func (f *Fake) install(t testing.TB, name, script string) string {
	t.Helper()
	fn := filepath.Join(f.Dir, name)
	if err := os.WriteFile(fn, []byte(script), 0o755); err != nil {
		t.Fatal(err)
	}
	// quoted, as the temporary directory may contain spaces
	return `"` + fn + `"`
}

// Calls returns the names of the programs run so far, in order.
func (f *Fake) Calls() []string {
	b, err := os.ReadFile(f.callsFile())
	if err != nil {
		return nil
	}
	return strings.Fields(string(b))
}

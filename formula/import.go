// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package formula

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/latexformula/latexformula/base/exec"
	"github.com/latexformula/latexformula/base/fsx"
	"github.com/latexformula/latexformula/calibrate"
	"github.com/latexformula/latexformula/config"
	"github.com/latexformula/latexformula/latex"
	"github.com/latexformula/latexformula/pipeline"
	"github.com/latexformula/latexformula/rewrite"
	"github.com/latexformula/latexformula/svg"
	"github.com/lucasb-eyer/go-colorful"
)

// Importer imports formulas using the settings of a [config.Config].
type Importer struct {
	Config *config.Config
}

// NewImporter returns a new [Importer] with the given settings.
func NewImporter(cfg *config.Config) *Importer {
	return &Importer{Config: cfg}
}

// Request returns the request for the formula of the config.
func (im *Importer) Request() *Request {
	return &Request{
		Formula:  im.Config.Formula,
		Preamble: im.Config.Preamble,
		FontSize: im.Config.FontSize,
	}
}

// Import converts the formula of the given request and appends it to
// the current layer of the given document, returning the new group.
// The intermediate files are removed after a successful import, unless
// a work directory is configured, and left in place on any failure.
// A formula that latex rejects results in a [*pipeline.CompileError].
func (im *Importer) Import(doc *svg.Document, req *Request) (*svg.Node, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := im.Config.Validate(); err != nil {
		return nil, err
	}
	dir, keep, err := im.workDir()
	if err != nil {
		return nil, err
	}
	g, err := im.importIn(dir, doc, req)
	if err != nil {
		var ce *pipeline.CompileError
		if errors.As(err, &ce) {
			return nil, err
		}
		return nil, fmt.Errorf("%w (temporary files were left in %s)", err, dir)
	}
	if !keep {
		im.cleanup(dir)
	}
	return g, nil
}

// workDir returns the directory for the intermediate files, and
// whether it is to be kept after a successful import.
func (im *Importer) workDir() (string, bool, error) {
	if im.Config.WorkDir == "" {
		dir, err := os.MkdirTemp("", "latexformula-")
		return dir, false, err
	}
	dir, err := fsx.ExpandHome(im.Config.WorkDir)
	if err != nil {
		return "", true, err
	}
	return dir, true, os.MkdirAll(dir, 0o755)
}

func (im *Importer) cleanup(dir string) {
	var err error
	switch im.Config.Cleanup {
	case config.Trash:
		err = fsx.Trash(dir)
	default:
		err = exec.Minor().RemoveAll(dir)
	}
	if err != nil {
		slog.Warn("could not remove temporary files", "dir", dir, "err", err)
	}
}

func (im *Importer) importIn(dir string, doc *svg.Document, req *Request) (*svg.Node, error) {
	r := pipeline.NewRunner(dir, im.Config.Tools)
	if err := latex.WriteSource(r.SourceFile(), req.Formula, req.Preamble, im.Config.MarkerColor); err != nil {
		return nil, err
	}
	src, err := r.Run()
	if err != nil {
		return nil, err
	}
	unit, err := doc.UnitToUU(latex.MarkerSize)
	if err != nil {
		return nil, err
	}
	color, err := colorful.Hex(im.Config.MarkerColor)
	if err != nil {
		return nil, err
	}
	cal, marker, ok := calibrate.Locate(src.Root, color, unit, req.FontSize)
	if !ok {
		if im.Config.MarkerPolicy == config.Strict {
			return nil, calibrate.ErrNoMarker
		}
		slog.Warn("calibration marker not found; the formula may be misplaced or scaled wrongly", "formula", req.Formula)
		cal = calibrate.Default
	}
	slog.Debug("calibrated", "scale", cal.Scale, "anchorX", cal.AnchorX, "anchorY", cal.AnchorY)
	layerXf, err := doc.LayerTransform()
	if err != nil {
		return nil, err
	}
	prefix := doc.EnsureNamespace(rewrite.Prefix, rewrite.Namespace)
	g := rewrite.Tree(src.Root, &rewrite.Options{
		SVGPrefix:      doc.SVGPrefix(),
		Calibration:    cal,
		LayerTransform: layerXf,
		AttrPrefix:     prefix,
		Formula:        req.Formula,
		Marker:         marker,
	})
	for _, p := range rewrite.AttrPrefixes(g) {
		if p == prefix {
			continue
		}
		uri, ok := src.Root.LookupPrefix(p)
		if !ok {
			continue
		}
		if hp := doc.EnsureNamespace(p, uri); hp != p {
			g.RenameAttrPrefix(p, hp)
		}
	}
	req.tag(g, prefix)
	doc.AppendToCurrentLayer(g)
	return g, nil
}

// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/latexformula/latexformula/base/fsx"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// OpenFile reads the config struct from the given config file,
// which is decoded as YAML if it has a .yaml or .yml extension
// and as TOML otherwise. Fields not in the file are left unchanged.
func OpenFile(cfg any, file string) error {
	b, err := os.ReadFile(file)
	if err != nil {
		return err
	}
	switch strings.ToLower(filepath.Ext(file)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, cfg)
	default:
		err = toml.Unmarshal(b, cfg)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}
	return nil
}

// OpenFiles reads the config struct from the given config files,
// in order, so that later files override earlier ones.
func OpenFiles(cfg any, files ...string) error {
	for _, fn := range files {
		if err := OpenFile(cfg, fn); err != nil {
			return err
		}
	}
	return nil
}

// includer facilitates loading additional config files
// named on the command line.
type includer interface {
	// IncludesPtr returns a pointer to the Includes []string field
	// containing the additional config files.
	IncludesPtr() *[]string
}

// configFiles returns the config files to load: the default files
// found on [Options.IncludePaths], followed by any files named by
// the config object, which must exist.
func configFiles(opts *Options, cfg any) ([]string, error) {
	files := fsx.FindFilesOnPaths(opts.IncludePaths, opts.DefaultFiles...)
	inc, ok := cfg.(includer)
	if !ok {
		return files, nil
	}
	for _, fn := range *inc.IncludesPtr() {
		fn, err := fsx.ExpandHome(fn)
		if err != nil {
			return nil, err
		}
		ok, err := fsx.FileExists(fn)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("config file %q not found", fn)
		}
		files = append(files, fn)
	}
	return files, nil
}

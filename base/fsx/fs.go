// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fsx provides various utility functions for dealing with filesystems.
package fsx

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/Bios-Marcel/wastebasket/v2"
	"github.com/mitchellh/go-homedir"
)

// FileExists checks whether given file exists, returning true if so,
// false if not, and error if there is an error in accessing the file.
// Directories do not count as files.
func FileExists(filePath string) (bool, error) {
	fileInfo, err := os.Stat(filePath)
	if err == nil {
		return !fileInfo.IsDir(), nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// ExpandHome expands a leading ~ in the given path to the user's
// home directory. Other paths are returned unchanged.
func ExpandHome(path string) (string, error) {
	return homedir.Expand(path)
}

// FindFilesOnPaths attempts to locate given file(s) on given list of paths,
// returning the full Abs path to each file found (nil if none).
// Paths may start with ~.
func FindFilesOnPaths(paths []string, files ...string) []string {
	var res []string
	for _, path := range paths {
		path, err := ExpandHome(path)
		if err != nil {
			continue
		}
		for _, fn := range files {
			fp := filepath.Join(path, fn)
			ok, _ := FileExists(fp)
			if ok {
				if abs, err := filepath.Abs(fp); err == nil {
					fp = abs
				}
				res = append(res, fp)
			}
		}
	}
	return res
}

// Trash moves the given paths to the trash of the operating system,
// so that they can still be recovered by the user.
func Trash(paths ...string) error {
	return wastebasket.Trash(paths...)
}

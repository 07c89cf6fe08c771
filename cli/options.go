// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

// Options contains the options passed to cli
// that control its behavior.
type Options struct {

	// AppName is the internal name of the cli app
	// (typically in kebab-case) (see also [Options.AppTitle])
	AppName string

	// AppTitle is the user-visible name of the cli app
	// (typically in Title Case) (see also [Options.AppName])
	AppTitle string

	// AppAbout is the description of the cli app
	AppAbout string

	// Fatal is whether to, if there is an error in [Run],
	// print it and fatally exit the program through [os.Exit]
	// with an exit code of 1.
	Fatal bool

	// DefaultFiles are the config files to load, if they are
	// found on [Options.IncludePaths], before any flags are applied.
	DefaultFiles []string

	// IncludePaths is the list of directories to search for
	// [Options.DefaultFiles] in, in order. Paths may start with ~.
	IncludePaths []string

	// IgnoreUnknown is whether to ignore flags that do not correspond
	// to any field, logging them at the debug level, instead of failing.
	// Host applications may pass flags that are not relevant to us.
	// An ignored flag without an = value takes the following argument
	// as its value unless that starts with a dash, so an unknown bool
	// switch right before a positional argument must be given as
	// --name=true.
	IgnoreUnknown bool
}

// DefaultOptions returns a new [Options] value
// with standard default values, based on the given
// app name and optional app about info.
func DefaultOptions(name string, about ...string) *Options {
	abt := ""
	if len(about) > 0 {
		abt = about[0]
	}
	return &Options{
		AppName:      name,
		AppTitle:     name,
		AppAbout:     abt,
		DefaultFiles: []string{name + ".toml", name + ".yaml"},
		IncludePaths: []string{".", "~/.config/" + name},
	}
}

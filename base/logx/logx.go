// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides leveled, colored logging on top of [log/slog].
// Standard output is reserved for the SVG document written by the
// command, so everything here goes to standard error.
package logx

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// UserLevel is the verbosity [slog.Level] that the user has selected for
// what logging and printing messages should be shown. Messages at
// levels at or above this level will be shown. The default user
// verbosity level is [slog.LevelWarn], so that a successful run
// prints nothing.
var UserLevel = slog.LevelWarn

// LevelFromFlags returns the [slog.Level] object corresponding to the given
// user flag options. The flags correspond to the following values:
//   - vv: [slog.LevelDebug]
//   - v: [slog.LevelInfo]
//   - q: [slog.LevelError]
//   - (default: [slog.LevelWarn])
//
// The flags are evaluated in that order, so, for example, if both
// vv and q are specified, it will still return [slog.LevelDebug].
func LevelFromFlags(vv, v, q bool) slog.Level {
	switch {
	case vv:
		return slog.LevelDebug
	case v:
		return slog.LevelInfo
	case q:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// SetDefaultLogger sets the default logger to a text handler writing
// to [os.Stderr] at [UserLevel], with colored level names.
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr, UserLevel)))
}

// NewHandler returns a [slog.Handler] writing to w at the given level.
func NewHandler(w io.Writer, level slog.Level) slog.Handler {
	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			switch a.Key {
			case slog.TimeKey:
				if len(groups) == 0 {
					return slog.Attr{}
				}
			case slog.LevelKey:
				lv, ok := a.Value.Any().(slog.Level)
				if ok {
					a.Value = slog.StringValue(ApplyLevelColor(lv, lv.String()))
				}
			}
			return a
		},
	})
}

// PrintlnError is equivalent to [Println] with level [slog.LevelError].
func PrintlnError(a ...any) (n int, err error) {
	return Println(slog.LevelError, a...)
}

// Println is equivalent to [fmt.Fprintln] on [os.Stderr], but with
// color based on the given level. Also, if [UserLevel] is above
// the given level, it does not print anything.
func Println(level slog.Level, a ...any) (n int, err error) {
	if UserLevel > level {
		return 0, nil
	}
	return fmt.Fprintln(os.Stderr, ApplyLevelColor(level, fmt.Sprint(a...)))
}

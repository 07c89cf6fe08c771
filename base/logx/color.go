// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"log/slog"
	"os"

	"github.com/muesli/termenv"
)

// UseColor is whether to use color in log messages. It is on by default
// when standard error is a terminal that supports color.
var UseColor = termenv.NewOutput(os.Stderr).ColorProfile() != termenv.Ascii

var colorProfile = termenv.ANSI256

// ApplyLevelColor applies the color associated with the given level to the
// given string and returns the resulting string. If [UseColor] is set
// to false, it just returns the string it was passed.
func ApplyLevelColor(level slog.Level, str string) string {
	if !UseColor {
		return str
	}
	switch {
	case level >= slog.LevelError:
		return ErrorColor(str)
	case level >= slog.LevelWarn:
		return WarnColor(str)
	case level >= slog.LevelInfo:
		return InfoColor(str)
	default:
		return DebugColor(str)
	}
}

// DebugColor applies the color associated with the debug level to
// the given string and returns the resulting string.
func DebugColor(str string) string {
	return termenv.String(str).Foreground(colorProfile.Color("245")).String()
}

// InfoColor applies the color associated with the info level to
// the given string and returns the resulting string.
func InfoColor(str string) string {
	return termenv.String(str).Foreground(colorProfile.Color("39")).String()
}

// WarnColor applies the color associated with the warn level to
// the given string and returns the resulting string.
func WarnColor(str string) string {
	return termenv.String(str).Foreground(colorProfile.Color("214")).String()
}

// ErrorColor applies the color associated with the error level to
// the given string and returns the resulting string.
func ErrorColor(str string) string {
	return termenv.String(str).Foreground(colorProfile.Color("196")).Bold().String()
}

// CmdColor applies the color used for echoed commands.
func CmdColor(str string) string {
	if !UseColor {
		return str
	}
	return termenv.String(str).Foreground(colorProfile.Color("35")).String()
}

// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package latex

import (
	"regexp"
	"strings"
)

// errorLine matches the lines of a TeX log that carry error messages
// and the input line numbers they refer to.
var errorLine = regexp.MustCompile(`Error|l\.[0-9]|! `)

// FilterLog returns the lines of the given compiler output that
// describe errors, in order, each terminated by a newline.
func FilterLog(log string) string {
	var sb strings.Builder
	for _, ln := range strings.Split(log, "\n") {
		ln = strings.TrimSuffix(ln, "\r")
		if errorLine.MatchString(ln) {
			sb.WriteString(ln)
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

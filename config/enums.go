// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"fmt"
	"strings"
)

// MarkerPolicy is what to do when the calibration marker
// is missing from the converted formula.
type MarkerPolicy int32

const (
	// Fallback uses a scale of 1 and no offset, and logs a warning.
	Fallback MarkerPolicy = iota

	// Strict fails the import.
	Strict
)

var markerPolicyNames = []string{"fallback", "error"}

// String returns the config name of the policy.
func (m MarkerPolicy) String() string {
	return enumString(int(m), markerPolicyNames)
}

// MarshalText implements [encoding.TextMarshaler].
func (m MarkerPolicy) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (m *MarkerPolicy) UnmarshalText(text []byte) error {
	i, err := enumParse(string(text), markerPolicyNames, "marker policy")
	*m = MarkerPolicy(i)
	return err
}

// Cleanup is what to do with the temporary directory
// after a successful import.
type Cleanup int32

const (
	// Remove deletes the directory.
	Remove Cleanup = iota

	// Trash moves the directory to the trash of the operating system.
	Trash
)

var cleanupNames = []string{"remove", "trash"}

// String returns the config name of the cleanup mode.
func (c Cleanup) String() string {
	return enumString(int(c), cleanupNames)
}

// MarshalText implements [encoding.TextMarshaler].
func (c Cleanup) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (c *Cleanup) UnmarshalText(text []byte) error {
	i, err := enumParse(string(text), cleanupNames, "cleanup mode")
	*c = Cleanup(i)
	return err
}

func enumString(i int, names []string) string {
	if i < 0 || i >= len(names) {
		return fmt.Sprintf("%d", i)
	}
	return names[i]
}

// enumParse returns the index of the given name, case-insensitively.
// On error, it returns 0, which is the default value.
func enumParse(s string, names []string, what string) (int, error) {
	s = strings.TrimSpace(s)
	for i, nm := range names {
		if strings.EqualFold(s, nm) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("invalid %s %q: must be one of %s", what, s, strings.Join(names, ", "))
}

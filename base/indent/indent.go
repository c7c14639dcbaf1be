// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package indent provides indentation generation methods.
package indent

import (
	"fmt"
	"strings"
)

// Character is the type of indentation character to use.
type Character int32

const (
	// Tab indicates to use tabs for indentation.
	Tab Character = iota

	// Space indicates to use spaces for indentation.
	Space
)

// String returns the lower-case name of the character.
func (ich Character) String() string {
	if ich == Tab {
		return "tab"
	}
	return "space"
}

// ParseCharacter returns the character with the given name,
// as returned by [Character.String].
func ParseCharacter(s string) (Character, error) {
	switch strings.ToLower(s) {
	case "tab", "tabs":
		return Tab, nil
	case "space", "spaces", "":
		return Space, nil
	}
	return Space, fmt.Errorf("indent: unknown indentation character %q", s)
}

// Tabs returns a string of n tabs.
func Tabs(n int) string {
	return strings.Repeat("\t", n)
}

// Spaces returns a string of n*width spaces.
func Spaces(n, width int) string {
	return strings.Repeat(" ", n*width)
}

// String returns a string of n tabs or n*width spaces depending on the indent character.
func String(ich Character, n, width int) string {
	if ich == Tab {
		return Tabs(n)
	}
	return Spaces(n, width)
}

// Len returns the length of the indent string given indent character and indent level.
func Len(ich Character, n, width int) int {
	if ich == Tab {
		return n
	}
	return n * width
}

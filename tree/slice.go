// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import "slices"

// IndexOf returns the index of the given record in the given slice,
// or -1 if it is not found. The optional startIndex argument allows
// for an optimized bidirectional search outward from a guess at
// where the record might be, which is a key speedup for large slices.
func IndexOf(slice []Record, child Record, startIndex ...int) int {
	return findFunc(slice, func(e Record) bool { return e == child }, startIndex...)
}

// IndexByName returns the index of the first record in the given slice
// that has the given name, or -1 if none is found. The search runs in
// slice order so that the first match wins.
func IndexByName(slice []Record, name string) int {
	return slices.IndexFunc(slice, func(e Record) bool { return e.AsRecord().Name == name })
}

// moveIndex moves the element in the given slice at the given
// old position to the given new position and returns the
// resulting slice.
func moveIndex[E any](s []E, from, to int) []E {
	temp := s[from]
	s = slices.Delete(s, from, from+1)
	s = slices.Insert(s, to, temp)
	return s
}

// findFunc returns the index of the element matching the given function,
// searching bidirectionally outward from the optional start index, or
// linearly from the front if there is none. It returns -1 if not found.
func findFunc[T any](s []T, match func(e T) bool, startIndex ...int) int {
	n := len(s)
	if n == 0 {
		return -1
	}
	si := 0
	if len(startIndex) > 0 {
		si = min(max(startIndex[0], 0), n-1)
	}
	if si == 0 {
		return slices.IndexFunc(s, match)
	}
	up, down := si+1, si
	for up < n || down >= 0 {
		if down >= 0 {
			if match(s[down]) {
				return down
			}
			down--
		}
		if up < n {
			if match(s[up]) {
				return up
			}
			up++
		}
	}
	return -1
}

// Copyright 2026 The labconf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package versions orders version-like names, such as SDK install
// directories, the way a person reads them: "1.10.0" after "1.9.0".
package versions

import (
	"strings"

	"golang.org/x/mod/semver"
)

// Compare returns -1, 0 or 1 as a sorts before, equal to or after b.
// Names that are valid semantic versions (with or without the leading "v")
// are compared with semver rules; anything else falls back to a
// digit-aware comparison where numeric runs compare by value and '~' sorts
// before everything, including the end of the string.
func Compare(a, b string) int {
	if va, vb := canonical(a), canonical(b); va != "" && vb != "" {
		return semver.Compare(va, vb)
	}
	return natural(a, b)
}

// Latest returns the greatest name according to Compare, or "" for none.
func Latest(names []string) string {
	var latest string
	for i, name := range names {
		if i == 0 || Compare(name, latest) > 0 {
			latest = name
		}
	}
	return latest
}

func canonical(s string) string {
	v := s
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if semver.IsValid(v) {
		return v
	}
	return ""
}

func natural(a, b string) int {
	for a != "" || b != "" {
		var pa, pb string
		pa, a = split(a, false)
		pb, b = split(b, false)
		if c := compareText(pa, pb); c != 0 {
			return c
		}

		pa, a = split(a, true)
		pb, b = split(b, true)
		if c := compareNumber(pa, pb); c != 0 {
			return c
		}
	}
	return 0
}

// split cuts the leading run of digits (or non-digits) from s.
func split(s string, digits bool) (run, rest string) {
	i := 0
	for i < len(s) && isDigit(s[i]) == digits {
		i++
	}
	return s[:i], s[i:]
}

func compareText(a, b string) int {
	for i := 0; i < len(a) || i < len(b); i++ {
		var ca, cb byte
		if i < len(a) {
			ca = a[i]
		}
		if i < len(b) {
			cb = b[i]
		}
		if oa, ob := order(ca), order(cb); oa != ob {
			return sign(oa - ob)
		}
	}
	return 0
}

func compareNumber(a, b string) int {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")
	if len(a) != len(b) {
		return sign(len(a) - len(b))
	}
	return strings.Compare(a, b)
}

// order ranks letters by ASCII value, '~' and end-of-run lowest, and other
// punctuation after all letters.
func order(c byte) int {
	switch {
	case c == 0:
		return 0
	case c == '~':
		return -1
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		return int(c)
	default:
		return int(c) + 256
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}

// Copyright 2026 The labconf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package script

import (
	"regexp"
	"strings"
)

var shellSafe = regexp.MustCompile(`^[A-Za-z0-9_@%+=:,./~-]+$`)

// shellQuote leaves plain words alone so "~/emsdk/emsdk_env.sh" still
// expands, and single-quotes anything else.
func shellQuote(s string) string {
	if shellSafe.MatchString(s) {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// batchQuote double-quotes words cmd.exe would split or interpret.
func batchQuote(s string) string {
	if s == "" {
		return `""`
	}
	if strings.ContainsAny(s, " \t&()^;,|<>") {
		return `"` + s + `"`
	}
	return s
}

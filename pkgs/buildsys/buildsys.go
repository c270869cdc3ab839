// Copyright 2026 The labconf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package buildsys

// Invocation captures what a generated build script needs from a build
// system helper (CMake today): one configure line and one build line.
type Invocation interface {
	// ConfigureLine renders the configure command; quote escapes each word
	// for the target shell.
	ConfigureLine(quote func(string) string) string

	// BuildLine renders the build command.
	BuildLine(quote func(string) string) string
}

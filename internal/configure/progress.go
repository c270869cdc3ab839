// Copyright 2026 The labconf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package configure

import (
	"fmt"
	"io"

	"github.com/labfont/labconf/internal/env"
	"github.com/labfont/labconf/internal/probe"
)

// State is a step of a configure run. Runs move through the states in order.
type State int

const (
	Start State = iota
	Probing
	Resolving
	Synthesizing
	Documenting
	Patching
	Done
)

func (s State) String() string {
	switch s {
	case Start:
		return "Start"
	case Probing:
		return "Probing"
	case Resolving:
		return "Resolving"
	case Synthesizing:
		return "Synthesizing"
	case Documenting:
		return "Documenting"
	case Patching:
		return "Patching"
	case Done:
		return "Done"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

func (s State) title() string {
	switch s {
	case Probing:
		return "Checking dependencies"
	case Resolving:
		return "Resolving missing dependencies"
	case Synthesizing:
		return "Generating build scripts"
	case Documenting:
		return "Updating README with dependency information"
	case Patching:
		return "Updating CMake configuration for GLFW"
	}
	return s.String()
}

// Reporter prints a run's progress for the operator.
type Reporter struct {
	w    io.Writer
	goos string
}

// NewReporter returns a Reporter writing to w. A nil w discards everything.
func NewReporter(w io.Writer, goos string) *Reporter {
	if w == nil {
		w = io.Discard
	}
	return &Reporter{w: w, goos: goos}
}

// FormatStageHeader formats the header printed when a run enters s.
// Returns: "[{n}/{total}] {title}..."
func FormatStageHeader(s State) string {
	return fmt.Sprintf("[%d/%d] %s...", int(s), int(Done)-1, s.title())
}

// Banner opens the run.
func (r *Reporter) Banner() {
	fmt.Fprintln(r.w, "LabFont Configuration Tool")
	fmt.Fprintln(r.w, "==========================")
}

// Enter announces that the run moved to s.
func (r *Reporter) Enter(s State) {
	switch s {
	case Start:
	case Done:
		fmt.Fprintln(r.w, "\nConfiguration complete!")
		fmt.Fprintln(r.w, "You can now use the generated build scripts to build LabFont.")
	default:
		fmt.Fprintln(r.w, "\n"+FormatStageHeader(s))
	}
}

// Dependency reports a probe result, with install hints when it is missing.
func (r *Reporter) Dependency(res probe.Result) {
	if res.Found {
		if res.Location.IsZero() {
			fmt.Fprintf(r.w, "  ✓ %s found\n", res.Kind)
		} else {
			fmt.Fprintf(r.w, "  ✓ %s found at %s\n", res.Kind, res.Location)
		}
		return
	}
	fmt.Fprintf(r.w, "  ✗ %s not found\n", res.Kind)
	for _, hint := range installHints(res.Kind, r.goos) {
		fmt.Fprintf(r.w, "      %s\n", hint)
	}
}

func installHints(k probe.Kind, goos string) []string {
	switch k {
	case probe.GPUSDK:
		return []string{"Download from https://www.lunarg.com/vulkan-sdk/"}
	case probe.WasmToolchain:
		return []string{"Follow the instructions at https://emscripten.org/docs/getting_started/downloads.html"}
	case probe.WindowLibrary:
		hint := "Install with your package manager, e.g., apt install libglfw3-dev"
		switch goos {
		case env.Windows:
			hint = "Download from https://www.glfw.org/download.html or use vcpkg"
		case env.Darwin:
			hint = "Install with Homebrew: brew install glfw"
		}
		return []string{"Examples requiring GLFW will be disabled.", hint}
	}
	return nil
}

// Printf writes an indented detail line.
func (r *Reporter) Printf(format string, args ...any) {
	fmt.Fprintf(r.w, "  "+format+"\n", args...)
}

// Copyright 2026 The labconf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package readme keeps the generated build notes in the project README
// current. The notes start at Marker and run to the end of the document;
// everything before the marker belongs to the authors.
package readme

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/labfont/labconf/internal/env"
	"github.com/labfont/labconf/internal/fsutil"
	"github.com/labfont/labconf/internal/probe"
	"github.com/labfont/labconf/internal/script"
)

// Marker is the heading that opens the generated block.
const Marker = "## Build Dependencies Notes"

// DefaultDocument seeds a README that does not exist yet.
const DefaultDocument = "# LabFont\n\nModern text rendering and immediate mode drawing library\n\n"

const rerun = "Run labconf again after installation"

// Block is rendered Markdown starting with Marker.
type Block string

// Render describes every dependency in s and lists scripts, which were
// written to outputDir.
func Render(s probe.Snapshot, goos, outputDir string, scripts []script.Script) Block {
	var b strings.Builder
	b.WriteString(Marker + "\n\n")
	b.WriteString("The following dependencies are required to build different components of LabFont:\n\n")

	for _, r := range s.Results() {
		writeDependency(&b, r, goos)
	}

	b.WriteString("\n## Building\n\n")
	fmt.Fprintf(&b, "labconf has generated build scripts in `%s` for the detected dependencies:\n\n", outputDir)
	var examples []script.Script
	for _, sc := range scripts {
		if sc.Variant.Examples {
			examples = append(examples, sc)
			continue
		}
		fmt.Fprintf(&b, "- `%s`: %s\n", sc.FileName, sc.Description())
	}
	if len(examples) > 0 {
		b.WriteString("\n### Example Build Scripts\n\n")
		for _, sc := range examples {
			fmt.Fprintf(&b, "- `%s`: %s\n", sc.FileName, sc.Description())
		}
	}
	return Block(b.String())
}

func writeDependency(b *strings.Builder, r probe.Result, goos string) {
	name := r.Kind.String()
	switch {
	case r.Found && r.Location.IsOnPath():
		fmt.Fprintf(b, "- **%s**: Found in PATH\n", name)
		return
	case r.Found && r.Location.Path() != "":
		fmt.Fprintf(b, "- **%s**: Found at `%s`\n", name, r.Location.Path())
		return
	case r.Found:
		fmt.Fprintf(b, "- **%s**: Found\n", name)
		return
	}

	switch r.Kind {
	case probe.GPUSDK:
		fmt.Fprintf(b, "- **%s**: Not found. Required for the Vulkan backend.\n", name)
		b.WriteString("  - Download from [LunarG](https://www.lunarg.com/vulkan-sdk/)\n")
	case probe.WasmToolchain:
		fmt.Fprintf(b, "- **%s**: Not found. Required for WebAssembly builds.\n", name)
		b.WriteString("  - Follow the installation instructions at [Emscripten](https://emscripten.org/docs/getting_started/downloads.html)\n")
	case probe.WindowLibrary:
		fmt.Fprintf(b, "- **%s**: Not found. Required for examples.\n", name)
		b.WriteString("  - " + glfwHint(goos) + "\n")
	default:
		fmt.Fprintf(b, "- **%s**: Not found.\n", name)
	}
	b.WriteString("  - " + rerun + "\n")
}

func glfwHint(goos string) string {
	switch goos {
	case env.Windows:
		return "Download from [GLFW](https://www.glfw.org/download.html) or use vcpkg"
	case env.Darwin:
		return "Install with Homebrew: `brew install glfw`"
	}
	return "Install with your package manager, e.g., `apt install libglfw3-dev`"
}

// Merge replaces the generated block in doc with block, or appends block
// when doc has none. The marker only counts at the start of a line.
func Merge(doc string, block Block) string {
	if i := markerIndex(doc); i >= 0 {
		return doc[:i] + string(block)
	}
	head := strings.TrimRight(doc, "\n")
	if head == "" {
		return string(block)
	}
	return head + "\n\n" + string(block)
}

func markerIndex(doc string) int {
	for off := 0; off < len(doc); {
		i := strings.Index(doc[off:], Marker)
		if i < 0 {
			return -1
		}
		i += off
		if i == 0 || doc[i-1] == '\n' {
			return i
		}
		off = i + len(Marker)
	}
	return -1
}

// Update merges block into the README at path, creating it from
// DefaultDocument when missing. The file is only written when its content
// changes. Failures are *fsutil.Fault values.
func Update(path string, block Block) (changed bool, err error) {
	data, err := fsutil.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		data = []byte(DefaultDocument)
		changed = true
	case err != nil:
		return false, err
	}

	merged := Merge(string(data), block)
	if !changed && merged == string(data) {
		return false, nil
	}
	if err := fsutil.WriteFile(path, []byte(merged), 0o644); err != nil {
		return false, err
	}
	return true, nil
}

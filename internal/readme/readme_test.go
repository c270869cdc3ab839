// Copyright 2026 The labconf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package readme

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/labfont/labconf/internal/env"
	"github.com/labfont/labconf/internal/fsutil"
	"github.com/labfont/labconf/internal/probe"
	"github.com/labfont/labconf/internal/script"
)

func render(s probe.Snapshot, goos string) Block {
	scripts := script.Synthesize(s, goos, script.Options{SourceDir: "/src", OutputDir: "build"})
	return Render(s, goos, "build", scripts)
}

func TestRenderNothingFound(t *testing.T) {
	want := `## Build Dependencies Notes

The following dependencies are required to build different components of LabFont:

- **Vulkan SDK**: Not found. Required for the Vulkan backend.
  - Download from [LunarG](https://www.lunarg.com/vulkan-sdk/)
  - Run labconf again after installation
- **Emscripten**: Not found. Required for WebAssembly builds.
  - Follow the installation instructions at [Emscripten](https://emscripten.org/docs/getting_started/downloads.html)
  - Run labconf again after installation
- **GLFW**: Not found. Required for examples.
  - Install with your package manager, e.g., ` + "`apt install libglfw3-dev`" + `
  - Run labconf again after installation

## Building

labconf has generated build scripts in ` + "`build`" + ` for the detected dependencies:

- ` + "`build_core.sh`" + `: Builds the core library without any backends
- ` + "`build_wasm.sh`" + `: Prints the steps to install Emscripten for WebAssembly builds
`
	if diff := cmp.Diff(want, string(render(probe.Snapshot{}, env.Linux))); diff != "" {
		t.Errorf("Render mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderFound(t *testing.T) {
	s := probe.NewSnapshot(
		probe.FoundAt(probe.GPUSDK, "/opt/VulkanSDK/1.3.268.0/macOS"),
		probe.FoundOnPath(probe.WasmToolchain),
		probe.Found(probe.WindowLibrary),
	)
	got := string(render(s, env.Darwin))

	for _, want := range []string{
		"- **Vulkan SDK**: Found at `/opt/VulkanSDK/1.3.268.0/macOS`\n",
		"- **Emscripten**: Found in PATH\n",
		"- **GLFW**: Found\n",
		"- `build_vk.sh`: Builds with the Vulkan backend\n",
		"- `build_metal.sh`: Builds with the Metal backend\n",
		"\n### Example Build Scripts\n\n- `build_examples_cpu.sh`: Builds examples with the CPU backend\n",
		"- `build_examples_metal.sh`: Builds examples with the Metal backend\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Render lacks %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, rerun) {
		t.Errorf("install hints rendered with every dependency found:\n%s", got)
	}
	if i, j := strings.Index(got, "build_vk.sh"), strings.Index(got, "### Example"); i > j {
		t.Error("library scripts listed after the examples heading")
	}
}

func TestRenderListsExactlySynthesizedScripts(t *testing.T) {
	for _, goos := range []string{env.Linux, env.Darwin, env.Windows} {
		s := probe.NewSnapshot(probe.Found(probe.WindowLibrary))
		scripts := script.Synthesize(s, goos, script.Options{})
		got := string(Render(s, goos, "build", scripts))
		if n := strings.Count(got, "- `build_"); n != len(scripts) {
			t.Errorf("%s: %d scripts listed, %d synthesized", goos, n, len(scripts))
		}
		for _, sc := range scripts {
			if !strings.Contains(got, "`"+sc.FileName+"`") {
				t.Errorf("%s: %s not listed", goos, sc.FileName)
			}
		}
	}
}

func TestRenderGLFWHints(t *testing.T) {
	tests := map[string]string{
		env.Windows: "Download from [GLFW](https://www.glfw.org/download.html) or use vcpkg",
		env.Darwin:  "Install with Homebrew: `brew install glfw`",
		env.Linux:   "`apt install libglfw3-dev`",
	}
	for goos, want := range tests {
		if got := string(render(probe.Snapshot{}, goos)); !strings.Contains(got, want) {
			t.Errorf("%s: hint %q missing", goos, want)
		}
	}
}

func TestMerge(t *testing.T) {
	block := Block(Marker + "\n\nnew\n")
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"empty", "", Marker + "\n\nnew\n"},
		{"append", "# Title\n\nIntro\n", "# Title\n\nIntro\n\n" + Marker + "\n\nnew\n"},
		{"append trims", "# Title\n\n\n\n", "# Title\n\n" + Marker + "\n\nnew\n"},
		{"replace", "# Title\n\n" + Marker + "\n\nold\n\n## Later\n", "# Title\n\n" + Marker + "\n\nnew\n"},
		{"marker mid-line", "see `" + Marker + "`\n", "see `" + Marker + "`\n\n" + Marker + "\n\nnew\n"},
		{
			"marker after mid-line",
			"see `" + Marker + "`\n" + Marker + "\nold\n",
			"see `" + Marker + "`\n" + Marker + "\n\nnew\n",
		},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, Merge(tt.doc, block)); diff != "" {
			t.Errorf("%s: Merge mismatch (-want +got):\n%s", tt.name, diff)
		}
	}
}

func TestMergeIsIdempotent(t *testing.T) {
	block := render(probe.Snapshot{}, env.Linux)
	for _, doc := range []string{"", DefaultDocument, "# X\n" + Marker + "\nstale"} {
		once := Merge(doc, block)
		if twice := Merge(once, block); twice != once {
			t.Errorf("Merge(Merge(%q)) changed the document", doc)
		}
	}
}

func TestUpdate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "README.md")
	block := render(probe.Snapshot{}, env.Linux)

	changed, err := Update(path, block)
	if err != nil || !changed {
		t.Fatalf("Update new README = %v, %v", changed, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if want := "# LabFont\n\nModern text rendering and immediate mode drawing library\n\n" + string(block); string(data) != want {
		t.Errorf("README = %q, want %q", data, want)
	}

	fi, _ := os.Stat(path)
	changed, err = Update(path, block)
	if err != nil || changed {
		t.Fatalf("second Update = %v, %v; want unchanged", changed, err)
	}
	fi2, _ := os.Stat(path)
	if !fi2.ModTime().Equal(fi.ModTime()) {
		t.Error("unchanged README was rewritten")
	}

	found := render(probe.NewSnapshot(probe.Found(probe.WindowLibrary)), env.Linux)
	changed, err = Update(path, found)
	if err != nil || !changed {
		t.Fatalf("Update with new block = %v, %v", changed, err)
	}
	data, _ = os.ReadFile(path)
	if strings.Count(string(data), Marker) != 1 {
		t.Errorf("README has duplicate blocks:\n%s", data)
	}
}

func TestUpdateFault(t *testing.T) {
	dir := t.TempDir()
	_, err := Update(dir, Block(Marker))
	var fault *fsutil.Fault
	if !errors.As(err, &fault) || fault.Path != dir {
		t.Fatalf("Update(directory) = %v, want *fsutil.Fault for %s", err, dir)
	}
}

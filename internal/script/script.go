// Copyright 2026 The labconf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package script turns a probe.Snapshot into build scripts: one per
// eligible variant, batch files on Windows and bash everywhere else.
// Synthesis is pure and deterministic; Write puts the result on disk.
package script

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/labfont/labconf/internal/env"
	"github.com/labfont/labconf/internal/fsutil"
	"github.com/labfont/labconf/internal/probe"
	"github.com/labfont/labconf/pkgs/buildsys"
	"github.com/labfont/labconf/pkgs/buildsys/cmake"
)

// Options controls synthesis.
type Options struct {
	// SourceDir is the LabFont checkout passed to cmake.
	SourceDir string
	// OutputDir receives the scripts.
	OutputDir string
	// AlternateGenerator selects the Xcode project generator. It only has an
	// effect on macOS.
	AlternateGenerator bool
}

// Script is one rendered build script.
type Script struct {
	FileName   string
	Executable bool
	Body       string
	Variant    Variant
	// Guidance is set when Body only explains how to install a missing toolchain.
	Guidance bool
}

// Description says what running the script does.
func (s Script) Description() string {
	if s.Guidance {
		return "Prints the steps to install Emscripten for WebAssembly builds"
	}
	return s.Variant.Description
}

// Synthesize renders a script for every eligible variant in Catalog order.
// A missing Emscripten never drops build_wasm: it degrades to a guidance script.
func Synthesize(s probe.Snapshot, goos string, opts Options) []Script {
	var scripts []Script
	for _, v := range Catalog {
		switch {
		case v.Eligible(s, goos):
			scripts = append(scripts, Script{
				FileName:   v.FileName(goos),
				Executable: goos != env.Windows,
				Body:       render(v, s, goos, opts),
				Variant:    v,
			})
		case v.Guidance && v.runsOn(goos):
			scripts = append(scripts, Script{
				FileName:   v.FileName(goos),
				Executable: goos != env.Windows,
				Body:       renderGuidance(goos),
				Variant:    v,
				Guidance:   true,
			})
		}
	}
	return scripts
}

// Write creates dir if needed and writes every script into it, replacing
// any previous version. Failures are *fsutil.Fault values.
func Write(dir string, scripts []Script) error {
	if err := fsutil.MkdirAll(dir); err != nil {
		return err
	}
	for _, s := range scripts {
		perm := fs.FileMode(0o644)
		if s.Executable {
			perm = 0o755
		}
		if err := fsutil.WriteFile(filepath.Join(dir, s.FileName), []byte(s.Body), perm); err != nil {
			return err
		}
	}
	return nil
}

func invocation(v Variant, goos string, opts Options) buildsys.Invocation {
	c := cmake.New(opts.SourceDir).
		DefineBool("LABFONT_BUILD_EXAMPLES", v.Examples).
		DefineBool("LABFONT_ENABLE_METAL", v.Backend == Metal).
		DefineBool("LABFONT_ENABLE_VULKAN", v.Backend == Vulkan).
		DefineBool("LABFONT_ENABLE_WGPU", v.Backend == WebGPU)
	if v.Examples {
		c.DefineBool("LABFONT_BUILD_TESTS", false)
	}

	switch {
	case v.Backend == WebGPU:
		c.Launcher("emcmake").Define("CMAKE_BUILD_TYPE", "Debug")
		if goos == env.Windows {
			c.BuildTool("emmake", "cmake", "--build", ".")
		} else {
			c.BuildTool("emmake", "make", "-j$(nproc 2>/dev/null || echo 4)")
		}
	case opts.AlternateGenerator && goos == env.Darwin:
		c.Generator("Xcode").BuildConfig("Release")
	case goos != env.Windows:
		c.BuildTool("make")
	}
	return c
}

func render(v Variant, s probe.Snapshot, goos string, opts Options) string {
	inv := invocation(v, goos, opts)
	w := &writer{goos: goos}

	var activate, sdk string
	if v.Backend == WebGPU {
		activate = s.Get(probe.WasmToolchain).Location.Path()
	}
	if v.Backend == Vulkan {
		sdk = s.Get(probe.GPUSDK).Location.Path()
	}

	if goos == env.Windows {
		w.line("@echo off")
		if activate != "" {
			w.line("call %s", batchQuote(activate))
		}
		w.line("mkdir %s 2>nul", v.Dir())
		w.line("cd %s", v.Dir())
		if sdk != "" {
			w.line(`set "%s=%s"`, probe.SDKEnvVar, sdk)
		}
		w.line("%s", inv.ConfigureLine(batchQuote))
		w.line("%s", inv.BuildLine(batchQuote))
		w.line("cd ..")
		if v.Page != "" {
			w.line("echo Build complete. Run 'npx http-server %s' to start the server", v.Dir())
			w.line("echo Then open http://localhost:8080/%s in Chrome", v.Page)
		}
		return w.String()
	}

	w.line("#!/bin/bash")
	w.line("set -e")
	if activate != "" {
		w.line("source %s", shellQuote(activate))
	}
	w.line("mkdir -p %s && cd %s", v.Dir(), v.Dir())
	if sdk != "" {
		w.line("export %s=%s", probe.SDKEnvVar, shellQuote(sdk))
	}
	w.line("%s", inv.ConfigureLine(shellQuote))
	w.line("%s", inv.BuildLine(shellQuote))
	w.line("cd ..")
	if v.Page != "" {
		w.line(`echo "Build complete. Run 'npx http-server %s' to start the server"`, v.Dir())
		w.line(`echo "Then open http://localhost:8080/%s in Chrome"`, v.Page)
	}
	return w.String()
}

func renderGuidance(goos string) string {
	w := &writer{goos: goos}
	steps := []string{
		"Emscripten SDK not found. WebAssembly builds require Emscripten.",
		"To install Emscripten, follow these steps:",
		"1. Choose a location for Emscripten SDK (e.g., your home directory)",
		"2. Open a terminal and navigate to that location",
		"3. git clone https://github.com/emscripten-core/emsdk.git",
		"4. cd emsdk",
	}
	if goos == env.Windows {
		w.line("@echo off")
		steps = append(steps,
			"5. emsdk install latest",
			"6. emsdk activate latest",
			"7. Run emsdk_env.bat in every new command prompt",
			"8. Run labconf again after installation",
		)
		for _, s := range steps {
			w.line("echo %s", s)
		}
		return w.String()
	}

	w.line("#!/bin/bash")
	steps = append(steps,
		"5. ./emsdk install latest",
		"6. ./emsdk activate latest",
		"7. Add the following to your shell profile (.bashrc, .zshrc, etc.):",
		"   source /path/to/emsdk/emsdk_env.sh",
		"8. Run labconf again after installation",
	)
	for _, s := range steps {
		w.line(`echo "%s"`, s)
	}
	return w.String()
}

type writer struct {
	goos  string
	lines []string
}

func (w *writer) line(format string, args ...any) {
	w.lines = append(w.lines, fmt.Sprintf(format, args...))
}

func (w *writer) String() string {
	eol := "\n"
	if w.goos == env.Windows {
		eol = "\r\n"
	}
	return strings.Join(w.lines, eol) + eol
}

// Copyright 2026 The labconf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package script

import (
	"github.com/labfont/labconf/internal/env"
	"github.com/labfont/labconf/internal/probe"
)

// Backend is the rendering backend a variant enables. The CPU backend is
// always built and has no flag of its own.
type Backend string

const (
	CPU    Backend = "cpu"
	Vulkan Backend = "vulkan"
	Metal  Backend = "metal"
	WebGPU Backend = "wgpu"
)

// Variant is a named build configuration.
type Variant struct {
	Name     string
	Backend  Backend
	Examples bool

	// Guidance keeps the variant's script when its toolchain is missing,
	// rendering installation steps instead of a build.
	Guidance bool

	// Page is served after a WebGPU build, relative to the build directory.
	Page string

	Description string
}

// Catalog lists every variant in generation order.
var Catalog = []Variant{
	{Name: "core", Backend: CPU, Description: "Builds the core library without any backends"},
	{Name: "examples_cpu", Backend: CPU, Examples: true, Description: "Builds examples with the CPU backend"},
	{Name: "examples_vulkan", Backend: Vulkan, Examples: true, Description: "Builds examples with the Vulkan backend"},
	{Name: "examples_metal", Backend: Metal, Examples: true, Description: "Builds examples with the Metal backend"},
	{Name: "examples_wgpu", Backend: WebGPU, Examples: true, Page: "examples/basic_drawing.html", Description: "Builds examples with the WebGPU backend"},
	{Name: "vk", Backend: Vulkan, Description: "Builds with the Vulkan backend"},
	{Name: "wasm", Backend: WebGPU, Guidance: true, Page: "labfont_wgpu_tests.html", Description: "Builds with WebAssembly and WebGPU"},
	{Name: "metal", Backend: Metal, Description: "Builds with the Metal backend"},
}

// Platform returns the only GOOS the variant builds on, or "" for any.
func (v Variant) Platform() string {
	if v.Backend == Metal {
		return env.Darwin
	}
	return ""
}

// Requires lists the dependencies the variant needs, in probe.Kinds order.
func (v Variant) Requires() []probe.Kind {
	var kinds []probe.Kind
	if v.Backend == Vulkan {
		kinds = append(kinds, probe.GPUSDK)
	}
	if v.Backend == WebGPU {
		kinds = append(kinds, probe.WasmToolchain)
	}
	if v.Examples {
		kinds = append(kinds, probe.WindowLibrary)
	}
	return kinds
}

func (v Variant) runsOn(goos string) bool {
	p := v.Platform()
	return p == "" || p == goos
}

// Eligible reports whether v can be built on goos with the dependencies in s.
func (v Variant) Eligible(s probe.Snapshot, goos string) bool {
	if !v.runsOn(goos) {
		return false
	}
	for _, k := range v.Requires() {
		if !s.Has(k) {
			return false
		}
	}
	return true
}

// Dir is the build directory the variant's script creates.
func (v Variant) Dir() string {
	return "build_" + v.Name
}

// FileName is the script name on goos.
func (v Variant) FileName(goos string) string {
	return "build_" + v.Name + env.ScriptExt(goos)
}

// Copyright 2026 The labconf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package probe answers whether, and where, each optional LabFont build
// dependency is installed. Probes only read: they consult environment
// variables, stat well-known install locations and run at most one
// side-effect-free query command. They never write or prompt.
package probe

import (
	"fmt"
)

// Kind identifies an optional dependency.
type Kind int

const (
	GPUSDK        Kind = iota // Vulkan SDK
	WasmToolchain             // Emscripten
	WindowLibrary             // GLFW

	numKinds
)

// Kinds lists every Kind in probing order.
var Kinds = []Kind{GPUSDK, WasmToolchain, WindowLibrary}

func (k Kind) String() string {
	switch k {
	case GPUSDK:
		return "Vulkan SDK"
	case WasmToolchain:
		return "Emscripten"
	case WindowLibrary:
		return "GLFW"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// commandProbed reports whether k can be discovered purely through the
// command search path or a query command.
func (k Kind) commandProbed() bool {
	return k == WasmToolchain || k == WindowLibrary
}

// Location is where a dependency was found: nowhere (the zero value), an
// absolute filesystem path, or the OnPath sentinel.
type Location struct {
	path   string
	onPath bool
}

// OnPath marks a toolchain whose commands are already reachable through PATH.
var OnPath = Location{onPath: true}

// At returns the Location of a filesystem path.
func At(path string) Location {
	return Location{path: path}
}

// IsZero reports whether l names no location.
func (l Location) IsZero() bool { return l == Location{} }

// IsOnPath reports whether l is the OnPath sentinel.
func (l Location) IsOnPath() bool { return l.onPath }

// Path returns the filesystem path, or "" for the sentinel and the zero value.
func (l Location) Path() string { return l.path }

func (l Location) String() string {
	switch {
	case l.onPath:
		return "PATH"
	case l.path != "":
		return l.path
	}
	return "none"
}

// Result is the outcome of probing one dependency.
type Result struct {
	Kind     Kind
	Found    bool
	Location Location
}

// NotFound is a Result for an absent dependency; it never carries a location.
func NotFound(k Kind) Result { return Result{Kind: k} }

// Found is a Result for a dependency that is present but has no location
// worth recording, such as a library known to pkg-config.
func Found(k Kind) Result { return Result{Kind: k, Found: true} }

// FoundAt is a Result for a dependency installed at path.
func FoundAt(k Kind, path string) Result {
	return Result{Kind: k, Found: true, Location: At(path)}
}

// FoundOnPath is a Result for a toolchain reachable through PATH.
func FoundOnPath(k Kind) Result {
	return Result{Kind: k, Found: true, Location: OnPath}
}

// Validate checks the invariants every Result must hold.
func (r Result) Validate() error {
	if !r.Found && !r.Location.IsZero() {
		return fmt.Errorf("%s: not found but located at %s", r.Kind, r.Location)
	}
	if r.Location.IsOnPath() && !r.Kind.commandProbed() {
		return fmt.Errorf("%s: cannot be located on PATH", r.Kind)
	}
	return nil
}

// Snapshot holds one Result per Kind. It is a value: With returns a modified
// copy and never changes the receiver.
type Snapshot struct {
	results [numKinds]Result
}

// NewSnapshot builds a Snapshot from results. Kinds without a result are
// recorded as not found; a later result for the same Kind wins.
func NewSnapshot(results ...Result) Snapshot {
	var s Snapshot
	for _, r := range results {
		s = s.With(r)
	}
	return s
}

// Get returns the Result for k.
func (s Snapshot) Get(k Kind) Result {
	if k < 0 || k >= numKinds {
		return NotFound(k)
	}
	r := s.results[k]
	r.Kind = k
	return r
}

// Has reports whether k was found.
func (s Snapshot) Has(k Kind) bool {
	return s.Get(k).Found
}

// With returns a copy of s with the Result for r.Kind replaced.
func (s Snapshot) With(r Result) Snapshot {
	if r.Kind >= 0 && r.Kind < numKinds {
		s.results[r.Kind] = r
	}
	return s
}

// Results returns every Result in Kinds order.
func (s Snapshot) Results() []Result {
	out := make([]Result, 0, len(Kinds))
	for _, k := range Kinds {
		out = append(out, s.Get(k))
	}
	return out
}

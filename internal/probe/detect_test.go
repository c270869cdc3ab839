// Copyright 2026 The labconf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package probe

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/labfont/labconf/internal/env"
)

func TestDetectDowngradesFailures(t *testing.T) {
	h := newHost(t, env.Linux)
	p := NewProber(h)
	p.Detectors = map[Kind]DetectFunc{
		GPUSDK: func(context.Context, *env.Host) (Result, error) {
			return FoundAt(GPUSDK, "/sdk"), errors.New("permission denied")
		},
		WasmToolchain: func(context.Context, *env.Host) (Result, error) {
			panic("boom")
		},
		WindowLibrary: func(context.Context, *env.Host) (Result, error) {
			return Result{Kind: WindowLibrary, Location: At("/usr/include/GLFW")}, nil
		},
	}

	s := p.DetectAll(context.Background())
	for _, r := range s.Results() {
		if r.Found || !r.Location.IsZero() {
			t.Errorf("%s = %+v, want not found", r.Kind, r)
		}
	}
}

func TestDetectAppliesTimeout(t *testing.T) {
	h := newHost(t, env.Linux)
	p := NewProber(h)
	p.Timeout = time.Minute
	var hasDeadline bool
	p.Detectors = map[Kind]DetectFunc{
		WindowLibrary: func(ctx context.Context, _ *env.Host) (Result, error) {
			_, hasDeadline = ctx.Deadline()
			return Found(WindowLibrary), nil
		},
	}

	if r := p.Detect(context.Background(), WindowLibrary); !r.Found {
		t.Fatalf("Detect = %+v", r)
	}
	if !hasDeadline {
		t.Error("detector context has no deadline")
	}
}

func TestDetectUnknownKind(t *testing.T) {
	p := NewProber(newHost(t, env.Linux))
	if r := p.Detect(context.Background(), Kind(42)); r.Found {
		t.Fatalf("Detect(Kind(42)) = %+v", r)
	}
}

func TestDetectAllBuiltins(t *testing.T) {
	h := newHost(t, env.Linux)
	mkdirs(t,
		filepath.Join(h.Home, "VulkanSDK", "1.3.268.0", "x86_64"),
		h.SystemPath("/usr/include/GLFW"),
	)
	touch(t, filepath.Join(h.Home, "emsdk", "emsdk_env.sh"))

	s := NewProber(h).DetectAll(context.Background())

	if got := s.Get(GPUSDK).Location.Path(); got != filepath.Join(h.Home, "VulkanSDK", "1.3.268.0", "x86_64") {
		t.Errorf("GPU SDK at %q", got)
	}
	if got := s.Get(WasmToolchain).Location.Path(); got != filepath.Join(h.Home, "emsdk", "emsdk_env.sh") {
		t.Errorf("Emscripten at %q", got)
	}
	if !s.Has(WindowLibrary) {
		t.Error("GLFW not found")
	}
}

func TestDetectAllNothingInstalled(t *testing.T) {
	s := NewProber(newHost(t, env.Linux)).DetectAll(context.Background())
	for _, r := range s.Results() {
		if r.Found || !r.Location.IsZero() {
			t.Errorf("%s = %+v, want not found", r.Kind, r)
		}
	}
}

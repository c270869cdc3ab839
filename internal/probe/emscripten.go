// Copyright 2026 The labconf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package probe

import (
	"context"
	"path/filepath"

	"github.com/labfont/labconf/internal/env"
)

const emccCommand = "emcc"

// DetectEmscripten locates the Emscripten toolchain: emcc on PATH first,
// then the first emsdk environment script under the home directory.
func DetectEmscripten(_ context.Context, h *env.Host) (Result, error) {
	if h.HasCommand(emccCommand) {
		return FoundOnPath(WasmToolchain), nil
	}
	if h.Home == "" {
		return NotFound(WasmToolchain), nil
	}

	script := "emsdk_env" + env.ScriptExt(h.OS)
	for _, p := range []string{
		filepath.Join(h.Home, "emsdk", script),
		filepath.Join(h.Home, "Documents", "emsdk", script),
	} {
		if isFile(p) {
			return FoundAt(WasmToolchain, p), nil
		}
	}
	return NotFound(WasmToolchain), nil
}

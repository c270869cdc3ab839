// Copyright 2026 The labconf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package probe

import (
	"context"
	"path/filepath"

	"github.com/labfont/labconf/internal/env"
	"github.com/qiniu/x/log"
)

const (
	pkgConfigCommand = "pkg-config"
	glfwPackage      = "glfw3"
)

// DetectGLFW asks pkg-config about glfw3 when it is available, then falls
// back to the conventional header directories for the host OS.
func DetectGLFW(ctx context.Context, h *env.Host) (Result, error) {
	if h.HasCommand(pkgConfigCommand) {
		_, err := h.Output(ctx, pkgConfigCommand, "--exists", glfwPackage)
		if err == nil {
			return Found(WindowLibrary), nil
		}
		if _, ok := env.ExitCode(err); !ok {
			log.Debugf("probe: %s --exists %s: %v", pkgConfigCommand, glfwPackage, err)
		}
	}

	for _, dir := range glfwDirs(h) {
		if exists(dir) {
			return Found(WindowLibrary), nil
		}
	}
	return NotFound(WindowLibrary), nil
}

func glfwDirs(h *env.Host) []string {
	switch h.OS {
	case env.Windows:
		pf := h.ProgramFiles()
		return []string{
			filepath.Join(pf, "GLFW"),
			filepath.Join(pf, "glfw"),
		}
	case env.Darwin:
		return []string{
			h.SystemPath("/usr/local/include/GLFW"),
			h.SystemPath("/usr/local/include/glfw"),
			h.SystemPath("/opt/homebrew/include/GLFW"),
			h.SystemPath("/opt/homebrew/include/glfw"),
		}
	default:
		return []string{
			h.SystemPath("/usr/include/GLFW"),
			h.SystemPath("/usr/include/glfw"),
			h.SystemPath("/usr/local/include/GLFW"),
			h.SystemPath("/usr/local/include/glfw"),
		}
	}
}

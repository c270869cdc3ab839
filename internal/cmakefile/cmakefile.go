// Copyright 2026 The labconf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmakefile teaches the examples' CMakeLists.txt to build without
// GLFW. Edits are plain substring replacements against the stock file, so a
// hand-edited file may be left untouched.
package cmakefile

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/labfont/labconf/internal/fsutil"
)

// Path is the patched file, relative to the project directory.
const Path = "examples/CMakeLists.txt"

// ErrTargetMissing is returned by Update when the file to patch does not exist.
var ErrTargetMissing = errors.New("patch target missing")

const (
	probeDirective = "find_package(glfw3"

	executable = `add_executable(basic_drawing "basic/drawing_main.cpp")`

	discovery = `# Find GLFW
find_package(glfw3 QUIET)
if(NOT glfw3_FOUND)
  find_package(PkgConfig QUIET)
  if(PkgConfig_FOUND)
    pkg_check_modules(GLFW QUIET glfw3)
  endif()
endif()

# Check if GLFW was found
if(NOT glfw3_FOUND AND NOT GLFW_FOUND)
  message(WARNING "GLFW not found. Examples requiring GLFW will be disabled.")
  return()
endif()

`

	linkLibraries = "target_link_libraries(basic_drawing\n    PRIVATE\n        labfont\n)"

	linkLibrariesGLFW = "target_link_libraries(basic_drawing\n    PRIVATE\n        labfont\n" +
		"        $<$<BOOL:${glfw3_FOUND}>:glfw>\n" +
		"        $<$<BOOL:${GLFW_FOUND}>:${GLFW_LIBRARIES}>\n)"
)

// Patch adds optional GLFW discovery ahead of the basic_drawing target and
// links GLFW when found. Text that already looks for glfw3 is returned as is.
func Patch(text string) string {
	if strings.Contains(text, probeDirective) {
		return text
	}
	text = strings.ReplaceAll(text, executable, discovery+executable)
	return strings.ReplaceAll(text, linkLibraries, linkLibrariesGLFW)
}

// Update patches the file at path in place and reports whether it changed.
// A missing file yields an error matching ErrTargetMissing; other failures
// are *fsutil.Fault values.
func Update(path string) (bool, error) {
	data, err := fsutil.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("%s: %w", path, ErrTargetMissing)
	}
	if err != nil {
		return false, err
	}
	patched := Patch(string(data))
	if patched == string(data) {
		return false, nil
	}
	if err := fsutil.WriteFile(path, []byte(patched), 0o644); err != nil {
		return false, err
	}
	return true, nil
}

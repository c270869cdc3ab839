// Copyright 2026 The labconf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmake

import (
	"sort"
	"strings"

	"github.com/labfont/labconf/pkgs/buildsys"
)

// CMake describes one configure-and-build invocation with chainable
// configuration. It renders command lines for scripts instead of running them.
type CMake struct {
	SourceDir   string
	BuildDir    string
	generator   string
	buildConfig string
	launcher    string
	buildTool   []string
	Defines     map[string]string
}

var _ buildsys.Invocation = (*CMake)(nil)

// New creates a CMake invocation for sourceDir, built in the current directory.
func New(sourceDir string) *CMake {
	return &CMake{
		SourceDir: sourceDir,
		BuildDir:  ".",
		Defines:   map[string]string{},
	}
}

// Generator selects a CMake generator such as "Xcode".
func (c *CMake) Generator(name string) *CMake {
	c.generator = name
	return c
}

// BuildConfig passes --config to the build step, for multi-config generators.
func (c *CMake) BuildConfig(name string) *CMake {
	c.buildConfig = name
	return c
}

// Launcher prefixes the configure step with a wrapper command such as
// emcmake. Wrap the build step through BuildTool.
func (c *CMake) Launcher(name string) *CMake {
	c.launcher = name
	return c
}

// BuildTool replaces "cmake --build" with a native build command line.
func (c *CMake) BuildTool(args ...string) *CMake {
	c.buildTool = args
	return c
}

func (c *CMake) Define(key, value string) *CMake {
	if c.Defines == nil {
		c.Defines = map[string]string{}
	}
	c.Defines[key] = value
	return c
}

func (c *CMake) DefineBool(key string, value bool) *CMake {
	if value {
		return c.Define(key, "ON")
	}
	return c.Define(key, "OFF")
}

// ConfigureArgs returns the configure command as argv, defines sorted by name.
func (c *CMake) ConfigureArgs() []string {
	var args []string
	if c.launcher != "" {
		args = append(args, c.launcher)
	}
	args = append(args, "cmake", c.SourceDir)
	if c.generator != "" {
		args = append(args, "-G", c.generator)
	}
	return append(args, c.definesArgs()...)
}

// BuildArgs returns the build command as argv.
func (c *CMake) BuildArgs() []string {
	if len(c.buildTool) > 0 {
		return append([]string(nil), c.buildTool...)
	}
	args := []string{"cmake", "--build", c.BuildDir}
	if c.buildConfig != "" {
		args = append(args, "--config", c.buildConfig)
	}
	return args
}

// ConfigureLine renders ConfigureArgs, quoting each word with quote.
func (c *CMake) ConfigureLine(quote func(string) string) string {
	return join(c.ConfigureArgs(), quote)
}

// BuildLine renders BuildArgs. A BuildTool command line is emitted verbatim
// so it may carry shell syntax.
func (c *CMake) BuildLine(quote func(string) string) string {
	if len(c.buildTool) > 0 {
		return strings.Join(c.buildTool, " ")
	}
	return join(c.BuildArgs(), quote)
}

func (c *CMake) definesArgs() []string {
	if len(c.Defines) == 0 {
		return nil
	}
	keys := make([]string, 0, len(c.Defines))
	for k := range c.Defines {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	args := make([]string, 0, len(keys))
	for _, k := range keys {
		args = append(args, "-D"+k+"="+c.Defines[k])
	}
	return args
}

func join(args []string, quote func(string) string) string {
	if quote == nil {
		return strings.Join(args, " ")
	}
	words := make([]string, len(args))
	for i, a := range args {
		words[i] = quote(a)
	}
	return strings.Join(words, " ")
}

// Copyright 2026 The labconf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package env describes the machine labconf is configuring. Probes and
// prompts only observe the host through a Host value, so tests can replace
// every environment lookup, command lookup and command execution.
package env

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"golang.org/x/sys/execabs"
)

// Operating systems with dedicated probing and script rules.
const (
	Windows = "windows"
	Darwin  = "darwin"
	Linux   = "linux"
)

// Host is a read-only view of the local machine.
type Host struct {
	// OS is a GOOS value.
	OS string
	// Home is the user's home directory. Empty disables home-relative candidates.
	Home string
	// Root prefixes absolute system paths such as /usr/include. Empty means "/".
	Root string

	Env   func(key string) string
	Which func(file string) (string, error)
	Exec  func(ctx context.Context, name string, args ...string) ([]byte, error)
}

// Local returns the Host for the running process.
func Local() *Host {
	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}
	return &Host{
		OS:    runtime.GOOS,
		Home:  home,
		Env:   os.Getenv,
		Which: execabs.LookPath,
		Exec:  output,
	}
}

func output(ctx context.Context, name string, args ...string) ([]byte, error) {
	return execabs.CommandContext(ctx, name, args...).Output()
}

// Getenv returns the value of the environment variable key.
func (h *Host) Getenv(key string) string {
	if h.Env == nil {
		return ""
	}
	return h.Env(key)
}

// HasCommand reports whether name resolves on the command search path.
func (h *Host) HasCommand(name string) bool {
	if h.Which == nil {
		return false
	}
	_, err := h.Which(name)
	return err == nil
}

// Output runs name with args and returns its standard output.
func (h *Host) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	if h.Exec == nil {
		return nil, fmt.Errorf("%s: command execution unavailable", name)
	}
	return h.Exec(ctx, name, args...)
}

// SystemPath maps an absolute system path onto Root.
func (h *Host) SystemPath(p string) string {
	if h.Root == "" {
		return p
	}
	return filepath.Join(h.Root, p)
}

// ProgramFiles returns the Windows program files directory.
func (h *Host) ProgramFiles() string {
	if dir := h.Getenv("ProgramFiles"); dir != "" {
		return dir
	}
	return `C:\Program Files`
}

// ScriptExt is the extension of shell scripts on goos.
func ScriptExt(goos string) string {
	if goos == Windows {
		return ".bat"
	}
	return ".sh"
}

// ExitStatus is a non-zero exit of an external command. Fakes return it in
// place of *exec.ExitError.
type ExitStatus int

func (e ExitStatus) Error() string { return fmt.Sprintf("exit status %d", int(e)) }

// ExitCode returns the status as an int.
func (e ExitStatus) ExitCode() int { return int(e) }

// ExitCode extracts the exit code from err. ok is false when err does not
// come from a process that ran to completion.
func ExitCode(err error) (code int, ok bool) {
	var coder interface{ ExitCode() int }
	if errors.As(err, &coder) {
		if code = coder.ExitCode(); code >= 0 {
			return code, true
		}
	}
	return 0, false
}

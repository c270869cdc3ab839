// Copyright 2026 The labconf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package env

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"testing"
)

func TestLocal(t *testing.T) {
	h := Local()
	if h.OS != runtime.GOOS {
		t.Errorf("OS = %q, want %q", h.OS, runtime.GOOS)
	}
	if h.Env == nil || h.Which == nil || h.Exec == nil {
		t.Fatal("Local() left a hook unset")
	}
}

func TestZeroHost(t *testing.T) {
	var h Host
	if got := h.Getenv("PATH"); got != "" {
		t.Errorf("Getenv on zero Host = %q, want empty", got)
	}
	if h.HasCommand("sh") {
		t.Error("HasCommand on zero Host = true")
	}
	if _, err := h.Output(context.Background(), "sh"); err == nil {
		t.Error("Output on zero Host succeeded")
	}
}

func TestSystemPath(t *testing.T) {
	h := &Host{}
	if got := h.SystemPath("/usr/include"); got != "/usr/include" {
		t.Errorf("SystemPath without root = %q", got)
	}
	h.Root = t.TempDir()
	want := filepath.Join(h.Root, "usr", "include")
	if got := h.SystemPath("/usr/include"); got != want {
		t.Errorf("SystemPath = %q, want %q", got, want)
	}
}

func TestProgramFiles(t *testing.T) {
	h := &Host{Env: func(string) string { return "" }}
	if got := h.ProgramFiles(); got != `C:\Program Files` {
		t.Errorf("default ProgramFiles = %q", got)
	}
	h.Env = func(key string) string {
		if key == "ProgramFiles" {
			return `D:\Apps`
		}
		return ""
	}
	if got := h.ProgramFiles(); got != `D:\Apps` {
		t.Errorf("ProgramFiles = %q, want %q", got, `D:\Apps`)
	}
}

func TestScriptExt(t *testing.T) {
	tests := []struct {
		goos string
		want string
	}{
		{Windows, ".bat"},
		{Darwin, ".sh"},
		{Linux, ".sh"},
		{"freebsd", ".sh"},
	}
	for _, tt := range tests {
		if got := ScriptExt(tt.goos); got != tt.want {
			t.Errorf("ScriptExt(%q) = %q, want %q", tt.goos, got, tt.want)
		}
	}
}

func TestExitCode(t *testing.T) {
	if code, ok := ExitCode(fmt.Errorf("wrapped: %w", ExitStatus(5))); !ok || code != 5 {
		t.Errorf("ExitCode(wrapped 5) = %d, %v", code, ok)
	}
	if _, ok := ExitCode(errors.New("exec: not started")); ok {
		t.Error("ExitCode of plain error reported ok")
	}
}

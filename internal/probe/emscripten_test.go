// Copyright 2026 The labconf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package probe

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/labfont/labconf/internal/env"
)

func TestDetectEmscripten(t *testing.T) {
	tests := []struct {
		name     string
		goos     string
		commands []string
		files    []string // relative to home
		want     string   // "" not found, "PATH", or path relative to home
	}{
		{
			name:     "emcc on PATH",
			goos:     env.Linux,
			commands: []string{"emcc"},
			files:    []string{"emsdk/emsdk_env.sh"},
			want:     "PATH",
		},
		{
			name:  "home emsdk",
			goos:  env.Linux,
			files: []string{"emsdk/emsdk_env.sh", "Documents/emsdk/emsdk_env.sh"},
			want:  "emsdk/emsdk_env.sh",
		},
		{
			name:  "documents emsdk",
			goos:  env.Darwin,
			files: []string{"Documents/emsdk/emsdk_env.sh"},
			want:  "Documents/emsdk/emsdk_env.sh",
		},
		{
			name:  "windows uses bat",
			goos:  env.Windows,
			files: []string{"emsdk/emsdk_env.sh", "Documents/emsdk/emsdk_env.bat"},
			want:  "Documents/emsdk/emsdk_env.bat",
		},
		{
			name:  "unix ignores bat",
			goos:  env.Linux,
			files: []string{"emsdk/emsdk_env.bat"},
		},
		{
			name: "nothing",
			goos: env.Linux,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHost(t, tt.goos)
			withCommands(h, tt.commands...)
			for _, f := range tt.files {
				touch(t, filepath.Join(h.Home, filepath.FromSlash(f)))
			}

			r, err := DetectEmscripten(context.Background(), h)
			if err != nil {
				t.Fatalf("DetectEmscripten: %v", err)
			}
			switch tt.want {
			case "":
				if r.Found || !r.Location.IsZero() {
					t.Errorf("DetectEmscripten = %+v, want not found", r)
				}
			case "PATH":
				if !r.Found || !r.Location.IsOnPath() {
					t.Errorf("DetectEmscripten = %+v, want on PATH", r)
				}
			default:
				want := filepath.Join(h.Home, filepath.FromSlash(tt.want))
				if !r.Found || r.Location.Path() != want {
					t.Errorf("DetectEmscripten = %+v, want %q", r, want)
				}
			}
		})
	}
}

func TestDetectEmscriptenSkipsDirectories(t *testing.T) {
	h := newHost(t, env.Linux)
	mkdirs(t, filepath.Join(h.Home, "emsdk", "emsdk_env.sh"))

	r, _ := DetectEmscripten(context.Background(), h)
	if r.Found {
		t.Fatalf("directory accepted as env script: %+v", r)
	}
}

func TestDetectEmscriptenNoHome(t *testing.T) {
	h := newHost(t, env.Linux)
	h.Home = ""

	r, _ := DetectEmscripten(context.Background(), h)
	if r.Found {
		t.Fatalf("DetectEmscripten without home = %+v", r)
	}
}

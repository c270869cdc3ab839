// Copyright 2026 The labconf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fsutil provides the file writes labconf performs. Every failure is
// reported as a *Fault naming the path, which aborts a configure run.
package fsutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Fault is a directory or file operation that failed.
type Fault struct {
	Op   string
	Path string
	Err  error
}

func (e *Fault) Error() string {
	return fmt.Sprintf("cannot %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *Fault) Unwrap() error { return e.Err }

// MkdirAll creates dir and its parents.
func MkdirAll(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &Fault{Op: "create directory", Path: dir, Err: err}
	}
	return nil
}

// ReadFile reads path. A missing file returns an error matching fs.ErrNotExist
// that is not a *Fault, so callers can treat it as absent rather than fatal.
func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		return nil, &Fault{Op: "read", Path: path, Err: err}
	}
	return data, nil
}

// WriteFile replaces the content of path and then applies perm, since
// os.WriteFile leaves the mode of an existing file untouched.
func WriteFile(path string, data []byte, perm fs.FileMode) error {
	if err := os.WriteFile(path, data, perm); err != nil {
		return &Fault{Op: "write", Path: path, Err: err}
	}
	if err := os.Chmod(path, perm); err != nil {
		return &Fault{Op: "chmod", Path: path, Err: err}
	}
	return nil
}

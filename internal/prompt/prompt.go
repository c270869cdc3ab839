// Copyright 2026 The labconf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package prompt asks the operator for the locations labconf could not
// discover on its own.
package prompt

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/labfont/labconf/internal/env"
	"golang.org/x/term"
)

// ErrNoInput is returned when the operator's input ended before an answer.
var ErrNoInput = errors.New("no input")

// Prompter asks yes/no questions and for directories.
type Prompter interface {
	// Confirm asks question and reports whether the operator accepted.
	Confirm(ctx context.Context, question string) (bool, error)
	// Directory asks for a directory described by what. An empty path
	// with a nil error means the operator cancelled.
	Directory(ctx context.Context, what string) (string, error)
}

// ForSession picks the prompting capability available to this process: a
// native dialog when one can be shown, backed by line prompts on in/out. It
// returns nil when the run must not prompt at all.
func ForSession(h *env.Host, in *os.File, out io.Writer, nonInteractive bool) *Resolver {
	if nonInteractive {
		return nil
	}
	var line Prompter
	if in != nil {
		line = NewLine(in, out)
	}
	if g, ok := NewGraphical(h); ok {
		return &Resolver{Primary: g, Fallback: line}
	}
	if line == nil || !term.IsTerminal(int(in.Fd())) {
		return nil
	}
	return &Resolver{Primary: line}
}

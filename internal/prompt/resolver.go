// Copyright 2026 The labconf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prompt

import (
	"context"
	"os"
	"path/filepath"

	"github.com/labfont/labconf/internal/probe"
	"github.com/qiniu/x/log"
)

const (
	sdkQuestion = "Vulkan SDK not found. Would you like to specify its location?"
	sdkWhat     = "Vulkan SDK directory"
)

// Resolver asks the operator for a Vulkan SDK the probe missed.
//
// Primary is used first. When it fails, Fallback replaces it for the rest of
// the run and the question is asked again once. A nil Resolver or Primary
// never prompts.
type Resolver struct {
	Primary  Prompter
	Fallback Prompter
}

// Resolve returns s, upgraded with an operator-supplied SDK directory when
// the probe found none. Declines, cancels, invalid answers and prompt
// failures leave s unchanged.
func (r *Resolver) Resolve(ctx context.Context, s probe.Snapshot) probe.Snapshot {
	if r == nil || r.Primary == nil || s.Has(probe.GPUSDK) {
		return s
	}

	dir, err := ask(ctx, r.Primary)
	if err != nil && r.Fallback != nil {
		log.Warnf("prompt: %v; switching to line prompts", err)
		r.Primary, r.Fallback = r.Fallback, nil
		dir, err = ask(ctx, r.Primary)
	}
	if err != nil {
		log.Warnf("prompt: %v; treating as declined", err)
		return s
	}
	if dir == "" {
		return s
	}

	fi, err := os.Stat(dir)
	if err != nil || !fi.IsDir() {
		log.Warnf("prompt: %s is not a directory", dir)
		return s
	}
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	log.Debugf("prompt: using %s at %s", probe.GPUSDK, dir)
	return s.With(probe.FoundAt(probe.GPUSDK, dir))
}

func ask(ctx context.Context, p Prompter) (string, error) {
	ok, err := p.Confirm(ctx, sdkQuestion)
	if err != nil || !ok {
		return "", err
	}
	return p.Directory(ctx, sdkWhat)
}

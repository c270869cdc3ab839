// Copyright 2026 The labconf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package probe

import (
	"context"
	"fmt"
	"time"

	"github.com/labfont/labconf/internal/env"
	"github.com/qiniu/x/log"
)

// DefaultTimeout bounds a single probe, including any query command it runs.
const DefaultTimeout = 10 * time.Second

// DetectFunc probes one dependency on h.
type DetectFunc func(ctx context.Context, h *env.Host) (Result, error)

// Prober runs the detectors for every Kind against one host.
type Prober struct {
	Host    *env.Host
	Timeout time.Duration

	// Detectors overrides the built-in detector for a Kind.
	Detectors map[Kind]DetectFunc
}

// NewProber returns a Prober for h using the built-in detectors.
func NewProber(h *env.Host) *Prober {
	return &Prober{Host: h, Timeout: DefaultTimeout}
}

func (p *Prober) detector(k Kind) DetectFunc {
	if fn, ok := p.Detectors[k]; ok {
		return fn
	}
	switch k {
	case GPUSDK:
		return DetectVulkan
	case WasmToolchain:
		return DetectEmscripten
	case WindowLibrary:
		return DetectGLFW
	}
	return nil
}

// Detect probes k. A detector that fails or panics is logged and reported as
// not found; Detect itself never fails.
func (p *Prober) Detect(ctx context.Context, k Kind) (r Result) {
	fn := p.detector(k)
	if fn == nil {
		return NotFound(k)
	}
	if p.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.Timeout)
		defer cancel()
	}
	defer func() {
		if v := recover(); v != nil {
			log.Warnf("probe: %s: panic: %v", k, v)
			r = NotFound(k)
		}
	}()

	r, err := fn(ctx, p.Host)
	if err == nil {
		r.Kind = k
		err = r.Validate()
	}
	if err != nil {
		log.Warnf("probe: %s: %v", k, fmt.Errorf("treating as not found: %w", err))
		return NotFound(k)
	}
	return r
}

// DetectAll probes every Kind once and returns the resulting Snapshot.
func (p *Prober) DetectAll(ctx context.Context) Snapshot {
	var s Snapshot
	for _, k := range Kinds {
		s = s.With(p.Detect(ctx, k))
	}
	return s
}

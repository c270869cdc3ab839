// Copyright 2026 The labconf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package configure runs labconf end to end: probe the host, ask for what
// is missing, write build scripts, refresh the README and patch the
// examples' CMakeLists.txt.
package configure

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/labfont/labconf/internal/cmakefile"
	"github.com/labfont/labconf/internal/env"
	"github.com/labfont/labconf/internal/probe"
	"github.com/labfont/labconf/internal/prompt"
	"github.com/labfont/labconf/internal/readme"
	"github.com/labfont/labconf/internal/script"
	"github.com/qiniu/x/log"
)

// DefaultOutputDir receives the build scripts unless told otherwise.
const DefaultOutputDir = "build"

// Options configures a run.
type Options struct {
	// ProjectDir is the LabFont checkout. Empty means the working directory.
	ProjectDir string
	// OutputDir receives the build scripts, relative to ProjectDir unless absolute.
	OutputDir          string
	AlternateGenerator bool

	// Host defaults to env.Local().
	Host *env.Host
	// Resolver asks for missing dependencies; nil never prompts.
	Resolver     *prompt.Resolver
	ProbeTimeout time.Duration

	// Out receives progress; nil discards it.
	Out io.Writer
}

// Report is what a run found and changed.
type Report struct {
	Snapshot  probe.Snapshot
	Scripts   []script.Script
	ScriptDir string

	ReadmeChanged    bool
	BuildFilePatched bool

	// State is the last state the run entered: Done unless it failed.
	State State
}

// Run configures the project. Missing dependencies and a missing
// CMakeLists.txt are not errors; a failed write is, and is returned as a
// *fsutil.Fault naming the path together with the partial Report.
func Run(ctx context.Context, opts Options) (*Report, error) {
	h := opts.Host
	if h == nil {
		h = env.Local()
	}
	projectDir, err := filepath.Abs(opts.ProjectDir)
	if err != nil {
		return nil, fmt.Errorf("project directory: %w", err)
	}
	outputDir := opts.OutputDir
	if outputDir == "" {
		outputDir = DefaultOutputDir
	}
	scriptDir := outputDir
	if !filepath.IsAbs(scriptDir) {
		scriptDir = filepath.Join(projectDir, scriptDir)
	}

	rep := &Report{State: Start, ScriptDir: scriptDir}
	pr := NewReporter(opts.Out, h.OS)
	enter := func(s State) {
		log.Debugf("configure: %s -> %s", rep.State, s)
		rep.State = s
		pr.Enter(s)
	}
	pr.Banner()

	enter(Probing)
	prober := probe.NewProber(h)
	if opts.ProbeTimeout > 0 {
		prober.Timeout = opts.ProbeTimeout
	}
	var snap probe.Snapshot
	for _, k := range probe.Kinds {
		r := prober.Detect(ctx, k)
		pr.Dependency(r)
		snap = snap.With(r)
	}

	enter(Resolving)
	switch {
	case snap.Has(probe.GPUSDK):
		pr.Printf("Nothing to resolve")
	case opts.Resolver == nil:
		pr.Printf("Skipping %s configuration (non-interactive)", probe.GPUSDK)
	default:
		snap = opts.Resolver.Resolve(ctx, snap)
		if r := snap.Get(probe.GPUSDK); r.Found {
			pr.Printf("Using user-specified %s at %s", r.Kind, r.Location)
		} else {
			pr.Printf("Skipping %s configuration", probe.GPUSDK)
		}
	}
	rep.Snapshot = snap

	enter(Synthesizing)
	if opts.AlternateGenerator && h.OS != env.Darwin {
		log.Warnf("configure: the alternate generator is only available on %s; using the default generator", env.Darwin)
	}
	rep.Scripts = script.Synthesize(snap, h.OS, script.Options{
		SourceDir:          projectDir,
		OutputDir:          scriptDir,
		AlternateGenerator: opts.AlternateGenerator,
	})
	if err := script.Write(scriptDir, rep.Scripts); err != nil {
		return rep, fmt.Errorf("write build scripts: %w", err)
	}
	for _, s := range rep.Scripts {
		pr.Printf("%s: %s", filepath.Join(outputDir, s.FileName), s.Description())
	}

	enter(Documenting)
	readmePath := filepath.Join(projectDir, "README.md")
	block := readme.Render(snap, h.OS, filepath.ToSlash(outputDir), rep.Scripts)
	if rep.ReadmeChanged, err = readme.Update(readmePath, block); err != nil {
		return rep, fmt.Errorf("update README: %w", err)
	}
	if rep.ReadmeChanged {
		pr.Printf("README.md updated")
	} else {
		pr.Printf("README.md already up to date")
	}

	enter(Patching)
	rep.BuildFilePatched, err = cmakefile.Update(filepath.Join(projectDir, cmakefile.Path))
	switch {
	case errors.Is(err, cmakefile.ErrTargetMissing):
		log.Debugf("configure: %v", err)
		pr.Printf("%s not found; skipping", cmakefile.Path)
	case err != nil:
		return rep, fmt.Errorf("patch %s: %w", cmakefile.Path, err)
	case rep.BuildFilePatched:
		pr.Printf("%s updated", cmakefile.Path)
	default:
		pr.Printf("%s unchanged", cmakefile.Path)
	}

	enter(Done)
	return rep, nil
}

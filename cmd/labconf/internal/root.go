// Copyright 2026 The labconf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package internal

import (
	"os"
	"time"

	"github.com/labfont/labconf/internal/config"
	"github.com/labfont/labconf/internal/configure"
	"github.com/labfont/labconf/internal/env"
	"github.com/labfont/labconf/internal/probe"
	"github.com/labfont/labconf/internal/prompt"
	"github.com/qiniu/x/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	useAlternateGenerator bool
	outputDir             string
	projectDir            string
	nonInteractive        bool
	verbose               bool
	probeTimeout          time.Duration
)

// localHost is replaced in tests.
var localHost = env.Local

var rootCmd = &cobra.Command{
	Use:   "labconf",
	Short: "labconf configures LabFont builds for this machine",
	Long: `labconf detects the Vulkan SDK, Emscripten and GLFW, writes a build script
for every LabFont configuration they allow, and records what it found in
README.md.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runConfigure,
}

func init() {
	flags := rootCmd.Flags()
	flags.BoolVar(&useAlternateGenerator, "use-alternate-generator", false, "Generate Xcode projects instead of Makefiles (macOS only)")
	flags.StringVar(&outputDir, "output-dir", configure.DefaultOutputDir, "Directory for the generated build scripts")
	flags.StringVar(&projectDir, "project-dir", ".", "LabFont source directory")
	flags.BoolVar(&nonInteractive, "non-interactive", false, "Never prompt for missing dependencies")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	flags.DurationVar(&probeTimeout, "probe-timeout", probe.DefaultTimeout, "Time limit for each dependency probe")
}

// Execute runs labconf. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func runConfigure(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(projectDir)
	if err != nil {
		log.Warnf("%v; ignoring project config", err)
		cfg = &config.ProjectConfig{}
	} else if cfg.Path != "" {
		log.Debugf("using config %s", cfg.Path)
	}
	applyConfig(cmd.Flags(), cfg)

	level := log.Linfo
	if verbose {
		level = log.Ldebug
	}
	log.SetOutputLevel(level)

	h := localHost()
	stdin, _ := cmd.InOrStdin().(*os.File)
	rep, err := configure.Run(cmd.Context(), configure.Options{
		ProjectDir:         projectDir,
		OutputDir:          outputDir,
		AlternateGenerator: useAlternateGenerator,
		Host:               h,
		Resolver:           prompt.ForSession(h, stdin, cmd.OutOrStdout(), nonInteractive),
		ProbeTimeout:       probeTimeout,
		Out:                cmd.OutOrStdout(),
	})
	if err != nil {
		return err
	}
	log.Debugf("wrote %d scripts to %s", len(rep.Scripts), rep.ScriptDir)
	return nil
}

// applyConfig fills every flag the command line left unset from cfg.
func applyConfig(flags *pflag.FlagSet, cfg *config.ProjectConfig) {
	if !flags.Changed("output-dir") && cfg.OutputDir != "" {
		outputDir = cfg.OutputDir
	}
	if !flags.Changed("use-alternate-generator") && cfg.AlternateGenerator {
		useAlternateGenerator = true
	}
	if !flags.Changed("non-interactive") && cfg.NonInteractive {
		nonInteractive = true
	}
	if !flags.Changed("verbose") && cfg.Verbose {
		verbose = true
	}
	if !flags.Changed("probe-timeout") && cfg.ProbeTimeout > 0 {
		probeTimeout = cfg.ProbeTimeout
	}
}

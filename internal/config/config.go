// Copyright 2026 The labconf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// FileNames are tried in order in the project directory.
var FileNames = []string{"labconf.yaml", "labconf.yml"}

// ProjectConfig holds project-level defaults for labconf flags.
type ProjectConfig struct {
	OutputDir          string        `yaml:"output_dir,omitempty"`
	AlternateGenerator bool          `yaml:"alternate_generator,omitempty"`
	NonInteractive     bool          `yaml:"non_interactive,omitempty"`
	Verbose            bool          `yaml:"verbose,omitempty"`
	ProbeTimeout       time.Duration `yaml:"probe_timeout,omitempty"`

	// Path is the file the config was read from, empty when none exists.
	Path string `yaml:"-"`
}

// Load reads the first of FileNames found in dir. It returns a zero-value
// config, not an error, if no config file exists.
func Load(dir string) (*ProjectConfig, error) {
	for _, name := range FileNames {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		var cfg ProjectConfig
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		if cfg.ProbeTimeout < 0 {
			return nil, fmt.Errorf("parse %s: negative probe_timeout %v", path, cfg.ProbeTimeout)
		}
		cfg.Path = path
		return &cfg, nil
	}
	return &ProjectConfig{}, nil
}

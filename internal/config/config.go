// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package config holds the configuration of the fcnet command-line tool.
package config

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config captures the knobs of one inference run.
type Config struct {
	// Layers are the layer widths, input first and output last.
	Layers []int `yaml:"layers"`

	// Seed for the weights initialization. If 0, the process-wide random source is used.
	Seed uint64 `yaml:"seed"`

	// Parallelism for inference. If 0, inference runs on the calling goroutine.
	// If negative, runtime.NumCPU() is used.
	Parallelism int `yaml:"parallelism"`

	// Input is the path to the batch file (.json or .csv). Empty or "-" means JSON from stdin.
	Input string `yaml:"input"`

	// Summary prints a table describing the network before the outputs.
	Summary bool `yaml:"summary"`
}

// Overrides captures command-line supplied values.
type Overrides struct {
	Layers      []int
	Seed        uint64
	Parallelism int
	Input       string
	Summary     bool
}

// Load reads and validates a Config from a YAML file.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open config")
	}
	defer func() { _ = f.Close() }()

	cfg, err := Parse(f)
	if err != nil {
		return nil, errors.WithMessagef(err, "config %q", path)
	}
	return cfg, nil
}

// Parse reads and validates a Config in YAML format. Unknown keys are an error.
func Parse(r io.Reader) (*Config, error) {
	cfg := &Config{}
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Wrap(err, "parse config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyOverrides updates c using any non-zero override.
func (c *Config) ApplyOverrides(o Overrides) {
	if len(o.Layers) > 0 {
		c.Layers = append([]int(nil), o.Layers...)
	}
	if o.Seed != 0 {
		c.Seed = o.Seed
	}
	if o.Parallelism != 0 {
		c.Parallelism = o.Parallelism
	}
	if o.Input != "" {
		c.Input = o.Input
	}
	if o.Summary {
		c.Summary = true
	}
}

// Validate verifies the config is runnable. Layers may still be empty, to be set by an override.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if len(c.Layers) == 1 {
		return errors.Errorf("layers must have at least 2 widths (got %v)", c.Layers)
	}
	for ii, width := range c.Layers {
		if width <= 0 {
			return errors.Errorf("layers[%d] must be > 0 (got %d)", ii, width)
		}
	}
	return nil
}

// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// fcnet builds a fully-connected feedforward network and runs inference over a batch of examples.
//
// The batch is read from a JSON file (an array of arrays of numbers), from a CSV file with a header
// row (one column per input feature), or as JSON from stdin. Outputs are written to stdout as JSON,
// one array per example, in the same order.
//
// Example:
//
//	echo '[[1, 2], [0.5, -1]]' | fcnet -layers=2,3,1 -seed=42 -summary
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/gomlx/fcnet/internal/config"
	"github.com/gomlx/fcnet/pkg/ml/fnn"
	"github.com/gomlx/fcnet/pkg/support/xslices"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

var (
	flagConfig = flag.String("config", "", "Path to an optional YAML configuration file. "+
		"Flags given explicitly override its values.")

	flagLayers = xslices.Flag("layers", nil,
		"Comma-separated layer widths, input first and output last. E.g.: 2,3,1", strconv.Atoi)

	flagSeed = flag.Uint64("seed", 0, "Seed for the weights initialization. "+
		"If 0, the process-wide random source is used and weights differ on every run.")

	flagParallelism = flag.Int("parallelism", 0, "Number of sub-batches to run in parallel. "+
		"Set to -1 to use all CPUs. If 0, inference runs sequentially.")

	flagInput   = flag.String("input", "", "Batch file, .json or .csv. If empty or \"-\", JSON is read from stdin.")
	flagSummary = flag.Bool("summary", false, "Print a summary of the network before the outputs.")
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		klog.Fatalf("fcnet: %+v", err)
	}
	if err := run(cfg); err != nil {
		klog.Fatalf("fcnet: %+v", err)
	}
}

func loadConfig() (*config.Config, error) {
	cfg := &config.Config{}
	if *flagConfig != "" {
		var err error
		cfg, err = config.Load(*flagConfig)
		if err != nil {
			return nil, err
		}
	}
	cfg.ApplyOverrides(config.Overrides{
		Layers:      *flagLayers,
		Seed:        *flagSeed,
		Parallelism: *flagParallelism,
		Input:       *flagInput,
		Summary:     *flagSummary,
	})
	if err := cfg.Validate(); err != nil {
		return nil, errors.WithMessage(err, "invalid configuration")
	}
	if len(cfg.Layers) == 0 {
		return nil, errors.New("no layer widths given, use -layers or set \"layers\" in the -config file")
	}
	return cfg, nil
}

func run(cfg *config.Config) error {
	builder := fnn.New(cfg.Layers...)
	if cfg.Seed != 0 {
		builder.Seed(cfg.Seed)
	}
	net, err := builder.Done()
	if err != nil {
		return err
	}
	if cfg.Summary {
		printSummary(net)
	}

	batch, err := readBatch(cfg.Input)
	if err != nil {
		return err
	}
	klog.V(1).Infof("read %d examples from %q", len(batch), cfg.Input)

	var outputs [][]float64
	switch {
	case cfg.Parallelism == 0:
		outputs, err = net.Infer(batch)
	case cfg.Parallelism < 0:
		outputs, err = net.InferParallel(batch, 0)
	default:
		outputs, err = net.InferParallel(batch, cfg.Parallelism)
	}
	if err != nil {
		return err
	}
	return writeOutputs(os.Stdout, outputs)
}

func writeOutputs(w io.Writer, outputs [][]float64) error {
	encoder := json.NewEncoder(w)
	if err := encoder.Encode(outputs); err != nil {
		return errors.Wrap(err, "writing outputs")
	}
	return nil
}

func init() {
	flag.Usage = func() {
		_, _ = fmt.Fprintf(flag.CommandLine.Output(),
			"Usage: %s [flags]\n\nBuilds a fully-connected network and runs inference over a batch.\n\nFlags:\n",
			os.Args[0])
		flag.PrintDefaults()
	}
}

// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package fnn implements a fully-connected FNN (Feedforward Neural Network) with purely
// affine layers, and batched forward inference over it.
//
// A Network is built from a list of layer widths: one weight matrix is created per pair of
// consecutive layers, with one extra input row for the bias unit. There is no activation
// function between layers, so the whole network computes a single affine map of its input.
//
// E.g.: a network with 2 inputs, a hidden layer of 3 neurons and 1 output:
//
//	net, err := fnn.New(2, 3, 1).Seed(42).Done()
//	if err != nil { … }
//	outputs, err := net.Infer([][]float64{{0.5, -1}, {1, 2}})
//
// A Network is immutable, and can be used concurrently by any number of goroutines.
package fnn

import (
	"github.com/gomlx/exceptions"
	"github.com/gomlx/fcnet/pkg/core/matrix"
	"github.com/gomlx/fcnet/pkg/core/shapes"
	"github.com/gomlx/fcnet/pkg/ml/initializer"
	"github.com/pkg/errors"
)

var (
	// ErrInvalidTopology is returned when the layer widths (or fixed weights) given don't describe a valid network.
	ErrInvalidTopology = errors.New("invalid topology")

	// ErrShapeMismatch is returned when the batch given to inference doesn't match the network's input width.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrEmptyBatch is returned when inference is called with no examples. It is a special case of ErrShapeMismatch.
	ErrEmptyBatch = errors.WithMessage(ErrShapeMismatch, "empty batch")
)

// Config is created with New and can be configured with its methods. Call Done to build the Network.
type Config struct {
	widths      []int
	rng         initializer.RandomSource
	initializer initializer.Initializer
}

// New returns a Config for a network with the given layer widths: the first one is the input width,
// the last one the output width and the ones in between the hidden layers.
//
// At least two widths must be given, all positive, otherwise Done returns ErrInvalidTopology.
func New(layerWidths ...int) *Config {
	return &Config{widths: append([]int(nil), layerWidths...)}
}

// Build is a shortcut to New(layerWidths...).Done(): it builds a network with weights drawn
// uniformly from [-1, 1) using the process-wide random source.
func Build(layerWidths []int) (*Network, error) {
	return New(layerWidths...).Done()
}

// RandomSource sets the source of randomness used by the default initializer.
// If not set, the process-wide source (initializer.Global) is used.
func (c *Config) RandomSource(rng initializer.RandomSource) *Config {
	c.rng = rng
	return c
}

// Seed makes the default initializer deterministic, using initializer.NewSource(seed).
func (c *Config) Seed(seed uint64) *Config {
	return c.RandomSource(initializer.NewSource(seed))
}

// Initializer overrides the initializer of the weight matrices.
// The default is initializer.Uniform(rng, -1, 1).
func (c *Config) Initializer(init initializer.Initializer) *Config {
	c.initializer = init
	return c
}

// Done validates the configuration and builds the Network.
func (c *Config) Done() (*Network, error) {
	if len(c.widths) < 2 {
		return nil, errors.Wrapf(ErrInvalidTopology, "at least 2 layer widths are required, got %v", c.widths)
	}
	for ii, width := range c.widths {
		if width <= 0 {
			return nil, errors.Wrapf(ErrInvalidTopology, "layer #%d has width %d, it must be > 0 (widths=%v)",
				ii, width, c.widths)
		}
	}
	init := c.initializer
	if init == nil {
		rng := c.rng
		if rng == nil {
			rng = initializer.Global()
		}
		init = initializer.Uniform(rng, -1, 1)
	}

	weights := make([]*matrix.Matrix, 0, len(c.widths)-1)
	for ii := range len(c.widths) - 1 {
		shape := shapes.Make(c.widths[ii]+1, c.widths[ii+1])
		var w *matrix.Matrix
		if err := exceptions.TryCatch[error](func() { w = init(shape) }); err != nil {
			return nil, errors.WithMessagef(err, "initializing weights of layer #%d", ii)
		}
		if w == nil || w.Shape() != shape {
			got := "nil"
			if w != nil {
				got = w.Shape().String()
			}
			return nil, errors.Wrapf(ErrInvalidTopology, "initializer returned weights of shape %s for layer #%d, wanted %s",
				got, ii, shape)
		}
		weights = append(weights, w)
	}
	return newNetwork(weights), nil
}

// FromWeights builds a Network from the given weight matrices, one per layer, bypassing random initialization.
//
// Weight matrix i must have shape (inputs_i+1, outputs_i), the last row holding the bias, and the
// chain of shapes must be contiguous: outputs_i == inputs_{i+1}. Otherwise it returns ErrInvalidTopology.
func FromWeights(weights ...*matrix.Matrix) (*Network, error) {
	if len(weights) == 0 {
		return nil, errors.Wrap(ErrInvalidTopology, "at least one weight matrix is required")
	}
	for ii, w := range weights {
		if w == nil {
			return nil, errors.Wrapf(ErrInvalidTopology, "weight matrix #%d is nil", ii)
		}
		if w.Rows() < 2 {
			return nil, errors.Wrapf(ErrInvalidTopology,
				"weight matrix #%d has shape %s, it needs at least one input row plus the bias row", ii, w.Shape())
		}
		if ii > 0 && weights[ii-1].Cols() != w.Rows()-1 {
			return nil, errors.Wrapf(ErrInvalidTopology,
				"weight matrix #%d has shape %s, incompatible with the %d outputs of weight matrix #%d (shape %s)",
				ii, w.Shape(), weights[ii-1].Cols(), ii-1, weights[ii-1].Shape())
		}
	}
	return newNetwork(weights), nil
}

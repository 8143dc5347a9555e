// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package initializer provides random sources and weight initializers for fcnet networks.
package initializer

import (
	"math/rand/v2"

	"github.com/gomlx/fcnet/pkg/core/matrix"
	"github.com/gomlx/fcnet/pkg/core/shapes"
)

// RandomSource generates uniformly distributed values in [0, 1).
//
// *rand.Rand from math/rand/v2 implements it.
type RandomSource interface {
	Float64() float64
}

// Initializer returns a newly initialized weight matrix of the given shape.
type Initializer func(shape shapes.Shape) *matrix.Matrix

type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }

// Global returns the process-wide random source. It is randomly seeded at start, so
// two networks initialized in sequence get different values.
//
// It is safe for concurrent use.
func Global() RandomSource { return globalSource{} }

// NewSource returns a deterministic random source seeded with seed.
//
// The returned source is not safe for concurrent use.
func NewSource(seed uint64) RandomSource {
	return rand.New(rand.NewPCG(seed, seed))
}

var (
	// Zero initializes weights with zero.
	Zero Initializer = func(shape shapes.Shape) *matrix.Matrix {
		return matrix.Full(shape, 0)
	}

	// One initializes weights with one.
	One Initializer = func(shape shapes.Shape) *matrix.Matrix {
		return matrix.Full(shape, 1)
	}
)

// Constant returns an initializer that sets every weight to value.
func Constant(value float64) Initializer {
	return func(shape shapes.Shape) *matrix.Matrix {
		return matrix.Full(shape, value)
	}
}

// Uniform returns an initializer that draws every weight independently and uniformly from
// [minValue, maxValue), computed as `minValue + u*(maxValue-minValue)` with u drawn from rng.
//
// Uniform(rng, -1, 1) yields the `2*u - 1` scheme used by default in fnn.
func Uniform(rng RandomSource, minValue, maxValue float64) Initializer {
	return func(shape shapes.Shape) *matrix.Matrix {
		return matrix.Generate(shape, func(_, _ int) float64 {
			return minValue + rng.Float64()*(maxValue-minValue)
		})
	}
}

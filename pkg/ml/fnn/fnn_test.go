// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package fnn_test

import (
	"testing"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/fcnet/pkg/core/matrix"
	"github.com/gomlx/fcnet/pkg/core/shapes"
	"github.com/gomlx/fcnet/pkg/ml/fnn"
	"github.com/gomlx/fcnet/pkg/ml/initializer"
	"github.com/janpfeifer/must"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildShapes(t *testing.T) {
	for _, widths := range [][]int{{1, 1}, {2, 3, 1}, {4, 8, 8, 2}, {5, 1, 7}} {
		net := must.M1(fnn.Build(widths))
		require.Equal(t, len(widths)-1, net.NumLayers(), "widths=%v", widths)
		assert.Equal(t, widths, net.Widths())
		assert.Equal(t, widths[0], net.InputWidth())
		assert.Equal(t, widths[len(widths)-1], net.OutputWidth())
		numParams := 0
		for ii, s := range net.Shapes() {
			assert.Equal(t, shapes.Make(widths[ii]+1, widths[ii+1]), s, "widths=%v, layer #%d", widths, ii)
			assert.Equal(t, s, net.Weights(ii).Shape())
			numParams += s.Size()
		}
		assert.Equal(t, numParams, net.NumParameters())
	}
	net := must.M1(fnn.Build([]int{2, 3, 1}))
	assert.Equal(t, "FNN[2 3 1]: (3×3) → (4×1)", net.String())
}

func TestBuildWeightsRange(t *testing.T) {
	net := must.M1(fnn.New(10, 20, 5).Seed(1).Done())
	for ii := range net.NumLayers() {
		for _, v := range net.Weights(ii).CopyFlat() {
			assert.GreaterOrEqual(t, v, -1.0)
			assert.Less(t, v, 1.0)
		}
	}
}

func TestBuildRandomness(t *testing.T) {
	// Seeded networks are reproducible.
	net0 := must.M1(fnn.New(3, 4, 2).Seed(42).Done())
	net1 := must.M1(fnn.New(3, 4, 2).Seed(42).Done())
	for ii := range net0.NumLayers() {
		assert.True(t, net0.Weights(ii).Equal(net1.Weights(ii)))
	}

	// The process-wide source gives different weights for networks built in sequence.
	net0 = must.M1(fnn.Build([]int{3, 4, 2}))
	net1 = must.M1(fnn.Build([]int{3, 4, 2}))
	assert.False(t, net0.Weights(0).Equal(net1.Weights(0)))
}

func TestBuildInvalidTopology(t *testing.T) {
	for _, widths := range [][]int{nil, {}, {3}, {0, 2}, {2, -1, 3}, {2, 3, 0}} {
		net, err := fnn.Build(widths)
		require.ErrorIs(t, err, fnn.ErrInvalidTopology, "widths=%v", widths)
		assert.Nil(t, net)
	}
}

func TestBuildInitializer(t *testing.T) {
	net := must.M1(fnn.New(2, 2).Initializer(initializer.Constant(0.5)).Done())
	assert.Equal(t, []float64{0.5, 0.5, 0.5, 0.5, 0.5, 0.5}, net.Weights(0).CopyFlat())

	// Initializer returning the wrong shape.
	_, err := fnn.New(2, 2).Initializer(func(_ shapes.Shape) *matrix.Matrix {
		return matrix.Full(shapes.Make(2, 2), 0)
	}).Done()
	require.ErrorIs(t, err, fnn.ErrInvalidTopology)

	// Initializer returning nil.
	_, err = fnn.New(2, 2).Initializer(func(_ shapes.Shape) *matrix.Matrix { return nil }).Done()
	require.ErrorIs(t, err, fnn.ErrInvalidTopology)

	// Initializer that panics with an error.
	_, err = fnn.New(2, 2).Initializer(func(shape shapes.Shape) *matrix.Matrix {
		exceptions.Panicf("no weights for %s", shape)
		return nil
	}).Done()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no weights for (3×2)")
}

func TestFromWeights(t *testing.T) {
	w0 := matrix.Full(shapes.Make(3, 4), 1)
	w1 := matrix.Full(shapes.Make(5, 2), 1)
	net := must.M1(fnn.FromWeights(w0, w1))
	assert.Equal(t, []int{2, 4, 2}, net.Widths())
	assert.Same(t, w0, net.Weights(0))

	for name, weights := range map[string][]*matrix.Matrix{
		"no matrices":    nil,
		"nil matrix":     {w0, nil},
		"only bias row":  {matrix.Full(shapes.Make(1, 3), 1)},
		"broken chain":   {w0, matrix.Full(shapes.Make(4, 2), 1)},
		"repeated layer": {w0, w0},
	} {
		_, err := fnn.FromWeights(weights...)
		require.ErrorIs(t, err, fnn.ErrInvalidTopology, name)
	}
}

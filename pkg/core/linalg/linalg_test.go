// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package linalg_test

import (
	"testing"

	"github.com/gomlx/fcnet/pkg/core/linalg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranspose(t *testing.T) {
	// [[0 1 2] [3 4 5]] -> [[0 3] [1 4] [2 5]]
	src := []float64{0, 1, 2, 3, 4, 5}
	got := linalg.Transpose(src, 2, 3)
	assert.Equal(t, []float64{0, 3, 1, 4, 2, 5}, got)
	assert.Equal(t, []float64{0, 1, 2, 3, 4, 5}, src, "source buffer must not be modified")

	// Transposing twice is the identity.
	assert.Equal(t, src, linalg.Transpose(got, 3, 2))

	// Row and column vectors.
	assert.Equal(t, []float64{7, 8, 9}, linalg.Transpose([]float64{7, 8, 9}, 1, 3))
	assert.Equal(t, []float64{7, 8, 9}, linalg.Transpose([]float64{7, 8, 9}, 3, 1))

	require.Panics(t, func() { _ = linalg.Transpose(src, 4, 2) })
	require.Panics(t, func() { _ = linalg.Transpose(nil, 0, 0) })
}

func TestMultiply(t *testing.T) {
	// A: 2×3, B: 3×2.
	a := []float64{
		1, 2, 3,
		4, 5, 6,
	}
	b := []float64{
		7, 8,
		9, 10,
		11, 12,
	}
	got := linalg.Multiply(a, b, 2, 2, 3)
	assert.Equal(t, []float64{58, 64, 139, 154}, got)

	// Outer product: 3×1 · 1×2.
	got = linalg.Multiply([]float64{1, 2, 3}, []float64{10, 20}, 3, 2, 1)
	assert.Equal(t, []float64{10, 20, 20, 40, 30, 60}, got)

	// Inner product: 1×3 · 3×1.
	got = linalg.Multiply([]float64{1, 2, 3}, []float64{4, 5, 6}, 1, 1, 3)
	assert.Equal(t, []float64{32}, got)

	// Mismatched contraction dimension.
	require.Panics(t, func() { _ = linalg.Multiply(a, b, 2, 2, 2) })
	require.Panics(t, func() { _ = linalg.Multiply(a, b[:4], 2, 2, 3) })
}

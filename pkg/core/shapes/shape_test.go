// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package shapes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMake(t *testing.T) {
	s := Make(3, 4)
	assert.True(t, s.Ok())
	assert.Equal(t, 12, s.Size())
	assert.Equal(t, "(3×4)", s.String())
	assert.True(t, s.Equal(Shape{Rows: 3, Cols: 4}))
	assert.Equal(t, Make(4, 3), s.Transposed())

	require.Panics(t, func() { _ = Make(0, 2) })
	require.Panics(t, func() { _ = Make(2, -1) })
	assert.False(t, Shape{}.Ok())
}

func TestIndex(t *testing.T) {
	s := Make(2, 3)
	assert.Equal(t, 0, s.Index(0, 0))
	assert.Equal(t, 2, s.Index(0, 2))
	assert.Equal(t, 3, s.Index(1, 0))
	assert.Equal(t, 5, s.Index(1, 2))
	require.Panics(t, func() { _ = s.Index(2, 0) })
	require.Panics(t, func() { _ = s.Index(0, 3) })
}

func TestCheckFlat(t *testing.T) {
	s := Make(2, 3)
	require.NotPanics(t, func() { s.CheckFlat(6) })
	require.Panics(t, func() { s.CheckFlat(5) })
	require.Panics(t, func() { Shape{}.CheckFlat(0) })
}

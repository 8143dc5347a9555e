// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package shapes defines Shape, the (rows, cols) dimensions of a 2-D matrix.
//
// Matrices in fcnet are stored as flat row-major buffers, and a Shape tells how
// such a buffer is to be interpreted: element (row, col) lives at flat index
// `row*Cols + col`.
//
// ## Glossary
//
//   - Rows: number of rows of the matrix. For a weight matrix, the number of input
//     features plus one (the bias row).
//   - Cols: number of columns of the matrix. For a weight matrix, the number of
//     output neurons.
//   - Size: number of elements, Rows*Cols. It must match the length of the flat buffer.
//
// Example: the matrix `[][]float64{{0, 1, 2}, {3, 4, 5}}` has shape `(2×3)`, created
// with `shapes.Make(2, 3)`, and flat buffer `[]float64{0, 1, 2, 3, 4, 5}`.
package shapes

import (
	"fmt"

	"github.com/gomlx/exceptions"
)

// Shape of a 2-D matrix.
//
// Use Make to create a new shape. The zero value is an invalid shape.
type Shape struct {
	Rows, Cols int
}

// Make returns a Shape with the given dimensions.
//
// It panics if any of the dimensions is <= 0.
func Make(rows, cols int) Shape {
	s := Shape{Rows: rows, Cols: cols}
	if rows <= 0 || cols <= 0 {
		exceptions.Panicf("shapes.Make(%d, %d): cannot create a shape with a dimension <= 0", rows, cols)
	}
	return s
}

// Ok returns whether this is a valid Shape. The zero Shape{} is invalid.
func (s Shape) Ok() bool { return s.Rows > 0 && s.Cols > 0 }

// Size returns the number of elements needed to store a matrix of this shape.
func (s Shape) Size() int { return s.Rows * s.Cols }

// Transposed returns the shape with rows and columns swapped.
func (s Shape) Transposed() Shape { return Shape{Rows: s.Cols, Cols: s.Rows} }

// Equal compares two shapes for equality.
func (s Shape) Equal(s2 Shape) bool { return s == s2 }

// String implements fmt.Stringer.
func (s Shape) String() string {
	return fmt.Sprintf("(%d×%d)", s.Rows, s.Cols)
}

// Index returns the flat row-major index of element (row, col).
// Like with slice indexing, it panics for out-of-bounds coordinates.
func (s Shape) Index(row, col int) int {
	if row < 0 || row >= s.Rows || col < 0 || col >= s.Cols {
		exceptions.Panicf("Shape.Index(%d, %d) out-of-bounds for shape %s", row, col, s)
	}
	return row*s.Cols + col
}

// CheckFlat panics if a flat buffer of the given length cannot hold a matrix of this shape.
func (s Shape) CheckFlat(length int) {
	if !s.Ok() {
		exceptions.Panicf("invalid shape %s", s)
	}
	if length != s.Size() {
		exceptions.Panicf("flat buffer of length %d doesn't match shape %s (size %d)", length, s, s.Size())
	}
}

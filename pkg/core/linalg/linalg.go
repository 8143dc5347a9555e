// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package linalg provides the dense linear-algebra primitives used by fcnet: transpose
// and matrix multiplication over row-major flat buffers with caller-specified dimensions.
//
// The computation is delegated to gonum (gonum.org/v1/gonum/mat), which dispatches
// to its BLAS implementation. Buffers passed in are never modified, and results are
// always freshly allocated.
//
// Dimension mismatches are programming errors: they panic with an error (see
// github.com/gomlx/exceptions), and callers at the API boundary convert them back to
// errors with exceptions.TryCatch.
package linalg

import (
	"github.com/gomlx/exceptions"
	"gonum.org/v1/gonum/mat"
)

// Transpose returns the transpose of the rows×cols row-major matrix src, as a new
// cols×rows row-major buffer.
func Transpose(src []float64, rows, cols int) []float64 {
	checkBuffer("Transpose", "src", src, rows, cols)
	dst := make([]float64, len(src))
	out := mat.NewDense(cols, rows, dst)
	out.Copy(mat.NewDense(rows, cols, src).T())
	return dst
}

// Multiply returns C = A·B, where A is m×k, B is k×n and C is m×n, all row-major.
//
// k is the contraction dimension.
func Multiply(a, b []float64, m, n, k int) []float64 {
	checkBuffer("Multiply", "A", a, m, k)
	checkBuffer("Multiply", "B", b, k, n)
	dst := make([]float64, m*n)
	c := mat.NewDense(m, n, dst)
	c.Mul(mat.NewDense(m, k, a), mat.NewDense(k, n, b))
	return dst
}

func checkBuffer(op, name string, buf []float64, rows, cols int) {
	if rows <= 0 || cols <= 0 {
		exceptions.Panicf("linalg.%s: %s has invalid dimensions %d×%d", op, name, rows, cols)
	}
	if len(buf) != rows*cols {
		exceptions.Panicf("linalg.%s: %s has %d elements, but dimensions %d×%d require %d",
			op, name, len(buf), rows, cols, rows*cols)
	}
}

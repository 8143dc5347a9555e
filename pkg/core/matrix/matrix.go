// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package matrix implements Matrix, an immutable dense 2-D matrix of float64 stored as a
// row-major flat buffer plus its shapes.Shape.
//
// Every operation returns a new Matrix: the buffer of a Matrix is never modified after
// construction, so a Matrix can be freely shared across goroutines. Accessors that expose
// values return copies.
//
// Shape violations are programming errors and panic (see github.com/gomlx/exceptions).
package matrix

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/fcnet/pkg/core/linalg"
	"github.com/gomlx/fcnet/pkg/core/shapes"
)

// Matrix is an immutable row-major 2-D matrix.
type Matrix struct {
	shape shapes.Shape
	flat  []float64
}

// FromFlat creates a Matrix with the given dimensions from a copy of the row-major flat buffer.
func FromFlat(flat []float64, rows, cols int) *Matrix {
	shape := shapes.Make(rows, cols)
	shape.CheckFlat(len(flat))
	return &Matrix{shape: shape, flat: slices.Clone(flat)}
}

// wrap takes ownership of flat, which must not be used by the caller afterward.
func wrap(flat []float64, shape shapes.Shape) *Matrix {
	shape.CheckFlat(len(flat))
	return &Matrix{shape: shape, flat: flat}
}

// FromRows creates a Matrix from a slice of rows, all of the same length.
//
// It panics if there are no rows, or if the rows are empty or ragged.
func FromRows(rows [][]float64) *Matrix {
	if len(rows) == 0 {
		exceptions.Panicf("matrix.FromRows: no rows given")
	}
	cols := len(rows[0])
	shape := shapes.Make(len(rows), cols)
	flat := make([]float64, 0, shape.Size())
	for ii, row := range rows {
		if len(row) != cols {
			exceptions.Panicf("matrix.FromRows: row #%d has %d columns, but row #0 has %d", ii, len(row), cols)
		}
		flat = append(flat, row...)
	}
	return wrap(flat, shape)
}

// Full creates a Matrix of the given shape with every element set to value.
func Full(shape shapes.Shape, value float64) *Matrix {
	flat := make([]float64, shape.Size())
	for ii := range flat {
		flat[ii] = value
	}
	return wrap(flat, shape)
}

// Generate creates a Matrix of the given shape, calling fn for each element in row-major order.
func Generate(shape shapes.Shape, fn func(row, col int) float64) *Matrix {
	flat := make([]float64, shape.Size())
	for row := range shape.Rows {
		for col := range shape.Cols {
			flat[row*shape.Cols+col] = fn(row, col)
		}
	}
	return wrap(flat, shape)
}

// Shape of the matrix.
func (m *Matrix) Shape() shapes.Shape { return m.shape }

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.shape.Rows }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.shape.Cols }

// At returns the element at (row, col).
func (m *Matrix) At(row, col int) float64 {
	return m.flat[m.shape.Index(row, col)]
}

// Row returns a copy of the given row.
func (m *Matrix) Row(row int) []float64 {
	start := m.shape.Index(row, 0)
	return slices.Clone(m.flat[start : start+m.shape.Cols])
}

// CopyFlat returns a copy of the row-major flat buffer.
func (m *Matrix) CopyFlat() []float64 {
	return slices.Clone(m.flat)
}

// Value returns the matrix as a newly allocated [][]float64, one slice per row.
func (m *Matrix) Value() [][]float64 {
	rows := make([][]float64, m.shape.Rows)
	for row := range rows {
		rows[row] = m.Row(row)
	}
	return rows
}

// Transpose returns a new matrix with rows and columns swapped.
func (m *Matrix) Transpose() *Matrix {
	return wrap(linalg.Transpose(m.flat, m.shape.Rows, m.shape.Cols), m.shape.Transposed())
}

// AppendRow returns a new matrix with one extra row at the bottom, with every element set to value.
func (m *Matrix) AppendRow(value float64) *Matrix {
	shape := shapes.Make(m.shape.Rows+1, m.shape.Cols)
	flat := make([]float64, shape.Size())
	n := copy(flat, m.flat)
	for ii := n; ii < len(flat); ii++ {
		flat[ii] = value
	}
	return wrap(flat, shape)
}

// MatMul returns the product lhs·rhs. lhs.Cols() must be equal to rhs.Rows(), the contraction dimension.
func MatMul(lhs, rhs *Matrix) *Matrix {
	if lhs.shape.Cols != rhs.shape.Rows {
		exceptions.Panicf("matrix.MatMul(%s, %s): contraction dimensions don't match (%d != %d)",
			lhs.shape, rhs.shape, lhs.shape.Cols, rhs.shape.Rows)
	}
	m, k, n := lhs.shape.Rows, lhs.shape.Cols, rhs.shape.Cols
	return wrap(linalg.Multiply(lhs.flat, rhs.flat, m, n, k), shapes.Make(m, n))
}

// Equal returns whether both matrices have the same shape and exactly the same values.
func (m *Matrix) Equal(other *Matrix) bool {
	return m.shape == other.shape && slices.Equal(m.flat, other.flat)
}

// InDelta returns whether both matrices have the same shape and all values are within delta of each other.
func (m *Matrix) InDelta(other *Matrix, delta float64) bool {
	if m.shape != other.shape {
		return false
	}
	for ii, v := range m.flat {
		if math.Abs(v-other.flat[ii]) > delta {
			return false
		}
	}
	return true
}

// String implements fmt.Stringer.
func (m *Matrix) String() string {
	var sb strings.Builder
	sb.WriteString(m.shape.String())
	sb.WriteString("{")
	for row := range m.shape.Rows {
		if row > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", m.flat[row*m.shape.Cols:(row+1)*m.shape.Cols])
	}
	sb.WriteString("}")
	return sb.String()
}

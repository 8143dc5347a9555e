// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package fnn

import (
	"fmt"
	"strings"

	"github.com/gomlx/fcnet/pkg/core/matrix"
	"github.com/gomlx/fcnet/pkg/core/shapes"
	"k8s.io/klog/v2"
)

// Network is an immutable fully-connected feedforward network. Create it with New, Build or FromWeights.
type Network struct {
	layers []layer
}

// layer holds the weights of one layer transition, shaped (inputs+1, outputs), and their
// transpose, shaped (outputs, inputs+1), which is what inference multiplies by.
type layer struct {
	weights, transposed *matrix.Matrix
}

func newNetwork(weights []*matrix.Matrix) *Network {
	n := &Network{layers: make([]layer, len(weights))}
	for ii, w := range weights {
		n.layers[ii] = layer{weights: w, transposed: w.Transpose()}
	}
	if klog.V(1).Enabled() {
		klog.Infof("fnn: built network %s with %d parameters", n, n.NumParameters())
	}
	return n
}

// NumLayers returns the number of layer transitions, that is, the number of weight matrices.
// It is one less than the number of layer widths.
func (n *Network) NumLayers() int { return len(n.layers) }

// Widths returns the layer widths of the network, bias units excluded.
func (n *Network) Widths() []int {
	widths := make([]int, 0, len(n.layers)+1)
	widths = append(widths, n.InputWidth())
	for _, l := range n.layers {
		widths = append(widths, l.weights.Cols())
	}
	return widths
}

// InputWidth is the length of the example vectors accepted by Infer.
func (n *Network) InputWidth() int { return n.layers[0].weights.Rows() - 1 }

// OutputWidth is the length of the vectors returned by Infer.
func (n *Network) OutputWidth() int { return n.layers[len(n.layers)-1].weights.Cols() }

// Weights returns the weight matrix of layer transition ii, shaped (inputs+1, outputs), with the bias
// weights in the last row. Matrices are immutable, so it is safe to hold on to it.
func (n *Network) Weights(ii int) *matrix.Matrix { return n.layers[ii].weights }

// Shapes returns the shapes of all weight matrices, in order.
func (n *Network) Shapes() []shapes.Shape {
	s := make([]shapes.Shape, len(n.layers))
	for ii, l := range n.layers {
		s[ii] = l.weights.Shape()
	}
	return s
}

// NumParameters returns the total number of weights, bias included.
func (n *Network) NumParameters() (total int) {
	for _, l := range n.layers {
		total += l.weights.Shape().Size()
	}
	return
}

// String implements fmt.Stringer. E.g.: "FNN[2 3 1]: (3×3) → (4×1)".
func (n *Network) String() string {
	parts := make([]string, len(n.layers))
	for ii, s := range n.Shapes() {
		parts[ii] = s.String()
	}
	return fmt.Sprintf("FNN%v: %s", n.Widths(), strings.Join(parts, " → "))
}

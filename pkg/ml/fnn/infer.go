// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package fnn

import (
	"github.com/gomlx/exceptions"
	"github.com/gomlx/fcnet/internal/workerspool"
	"github.com/gomlx/fcnet/pkg/core/matrix"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Infer runs the network over a batch of examples, each of length InputWidth, and returns one
// output vector of length OutputWidth per example, in the same order.
//
// It fails with ErrEmptyBatch if the batch is empty and with ErrShapeMismatch if any example has the
// wrong length. Inference is all-or-nothing: on error no outputs are returned.
//
// It is safe to call Infer concurrently.
func (n *Network) Infer(batch [][]float64) (outputs [][]float64, err error) {
	if err = n.checkBatch(batch); err != nil {
		return nil, err
	}
	klog.V(2).Infof("fnn: inference over %d examples", len(batch))
	err = exceptions.TryCatch[error](func() {
		outputs = n.propagate(batch)
	})
	if err != nil {
		return nil, errors.Wrapf(ErrShapeMismatch, "inference failed: %v", err)
	}
	return outputs, nil
}

// checkBatch validates the batch against the network's input width.
func (n *Network) checkBatch(batch [][]float64) error {
	if len(batch) == 0 {
		return errors.WithStack(ErrEmptyBatch)
	}
	inputWidth := n.InputWidth()
	for ii, example := range batch {
		if len(example) != inputWidth {
			return errors.Wrapf(ErrShapeMismatch, "example #%d has %d values, but the network input width is %d",
				ii, len(example), inputWidth)
		}
	}
	return nil
}

// propagate runs the layers over a pre-validated batch. It panics on any shape inconsistency.
//
// The working buffer is kept with one row per feature and one column per example, so that each
// layer is a single product with the transposed weights, contracting over the (inputs+1) axis.
func (n *Network) propagate(batch [][]float64) [][]float64 {
	numExamples := len(batch)
	buffer := matrix.FromRows(batch).Transpose()
	for ii, l := range n.layers {
		buffer = buffer.AppendRow(1)
		if buffer.Rows() != l.weights.Rows() {
			exceptions.Panicf("layer #%d expects %d input rows (bias included), got working buffer of shape %s",
				ii, l.weights.Rows(), buffer.Shape())
		}
		// (outputs × inputs+1) · (inputs+1 × numExamples) → (outputs × numExamples)
		buffer = matrix.MatMul(l.transposed, buffer)
	}
	if buffer.Cols() != numExamples {
		exceptions.Panicf("working buffer has %d columns after the last layer, but the batch has %d examples",
			buffer.Cols(), numExamples)
	}
	return buffer.Transpose().Value()
}

// InferParallel is like Infer, but splits the batch into at most parallelism disjoint contiguous
// sub-batches, runs them concurrently and merges the outputs in the original order.
//
// If parallelism <= 0, runtime.NumCPU() is used. The whole batch is validated before any work starts,
// and on error no outputs are returned.
func (n *Network) InferParallel(batch [][]float64, parallelism int) ([][]float64, error) {
	if err := n.checkBatch(batch); err != nil {
		return nil, err
	}
	pool := workerspool.New()
	if parallelism > 0 {
		pool.SetMaxParallelism(parallelism)
	}
	ranges := workerspool.Split(len(batch), pool.MaxParallelism())
	klog.V(2).Infof("fnn: parallel inference over %d examples in %d sub-batches", len(batch), len(ranges))

	outputs := make([][]float64, len(batch))
	err := pool.Run(len(ranges), func(taskIdx int) error {
		start, end := ranges[taskIdx][0], ranges[taskIdx][1]
		subOutputs, err := n.Infer(batch[start:end])
		if err != nil {
			return errors.WithMessagef(err, "sub-batch of examples [%d, %d)", start, end)
		}
		copy(outputs[start:end], subOutputs)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return outputs, nil
}

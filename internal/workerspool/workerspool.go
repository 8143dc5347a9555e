// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package workerspool runs a fixed number of independent tasks with bounded parallelism.
package workerspool

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

type Pool struct {
	// maxParallelism is the limit of tasks running at the same time.
	// 0 means tasks run inline, sequentially. Negative means unlimited.
	maxParallelism int
}

// New return a new Pool of workers with the default parallelism (runtime.NumCPU()).
func New() *Pool {
	return &Pool{maxParallelism: runtime.NumCPU()}
}

// IsEnabled returns whether parallelism is enabled (maxParallelism is != 0)
func (w *Pool) IsEnabled() bool {
	return w.maxParallelism != 0
}

// IsUnlimited returns whether parallelism is unlimited (maxParallelism < 0)
func (w *Pool) IsUnlimited() bool {
	return w.maxParallelism < 0
}

// MaxParallelism is the limit of tasks running concurrently.
// If set to 0 parallelism is disabled.
// If set to -1 parallelism is unlimited.
func (w *Pool) MaxParallelism() int {
	return w.maxParallelism
}

// SetMaxParallelism sets the maxParallelism and returns the Pool itself.
//
// It should only be changed while no Run is in progress.
func (w *Pool) SetMaxParallelism(maxParallelism int) *Pool {
	w.maxParallelism = maxParallelism
	return w
}

// Run calls task(taskIdx) for every taskIdx in [0, numTasks), using at most MaxParallelism
// goroutines at a time, and waits for all of them to finish.
//
// It returns the first error returned by a task. Once a task fails, tasks not yet started are skipped.
// If parallelism is disabled, tasks run inline in order.
func (w *Pool) Run(numTasks int, task func(taskIdx int) error) error {
	if !w.IsEnabled() {
		for taskIdx := range numTasks {
			if err := task(taskIdx); err != nil {
				return err
			}
		}
		return nil
	}

	g, ctx := errgroup.WithContext(context.Background())
	if !w.IsUnlimited() {
		g.SetLimit(w.maxParallelism)
	}
	for taskIdx := range numTasks {
		g.Go(func() error {
			if ctx.Err() != nil {
				// Some other task already failed.
				return nil
			}
			return task(taskIdx)
		})
	}
	return g.Wait()
}

// Split partitions [0, total) into at most numParts contiguous, non-empty ranges [start, end)
// of nearly equal length, in order.
func Split(total, numParts int) (ranges [][2]int) {
	if total <= 0 {
		return nil
	}
	numParts = max(1, min(numParts, total))
	ranges = make([][2]int, 0, numParts)
	partSize, remainder := total/numParts, total%numParts
	start := 0
	for part := range numParts {
		end := start + partSize
		if part < remainder {
			end++
		}
		ranges = append(ranges, [2]int{start, end})
		start = end
	}
	return
}

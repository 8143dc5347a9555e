// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package xslices provides slice helpers missing from the standard slices package.
package xslices

import (
	"flag"
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Flag creates a flag in flag.CommandLine for a comma-separated []T with the given name, default value and usage.
// It takes as input a parser for an individual T value.
func Flag[T any](name string, defaultValue []T, usage string,
	parserFn func(valueStr string) (T, error)) *[]T {
	return FlagVar(flag.CommandLine, name, defaultValue, usage, parserFn)
}

// FlagVar is like Flag, but defines the flag in the given flag.FlagSet.
func FlagVar[T any](fs *flag.FlagSet, name string, defaultValue []T, usage string,
	parserFn func(valueStr string) (T, error)) *[]T {
	f := &sliceFlag[T]{
		parsedSlice: defaultValue,
		parserFn:    parserFn,
	}
	fs.Var(f, name, usage)
	return &f.parsedSlice
}

// sliceFlag implements flag.Value for a slice of a generic type.
type sliceFlag[T any] struct {
	parsedSlice []T
	parserFn    func(valueStr string) (T, error)
}

func (f *sliceFlag[T]) String() string {
	parts := make([]string, len(f.parsedSlice))
	for ii, elem := range f.parsedSlice {
		parts[ii] = fmt.Sprint(elem)
	}
	return strings.Join(parts, ",")
}

// Set parses a comma-separated list. Spaces around values are ignored, and an empty list yields an empty slice.
func (f *sliceFlag[T]) Set(listStr string) error {
	listStr = strings.TrimSpace(listStr)
	if listStr == "" {
		f.parsedSlice = make([]T, 0)
		return nil
	}
	parts := strings.Split(listStr, ",")
	parsed := make([]T, len(parts))
	for ii, part := range parts {
		var err error
		parsed[ii], err = f.parserFn(strings.TrimSpace(part))
		if err != nil {
			return errors.WithMessagef(err, "element #%d of %q", ii, listStr)
		}
	}
	f.parsedSlice = parsed
	return nil
}

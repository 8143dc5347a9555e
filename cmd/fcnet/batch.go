// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package main

import (
	"encoding/json"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/pkg/errors"
)

// readBatch reads the batch from path, chosen by its extension. Empty or "-" reads JSON from stdin.
func readBatch(path string) ([][]float64, error) {
	if path == "" || path == "-" {
		return decodeJSONBatch(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open batch")
	}
	defer func() { _ = f.Close() }()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return decodeJSONBatch(f)
	case ".csv":
		return decodeCSVBatch(f)
	default:
		return nil, errors.Errorf("batch file %q: unknown extension %q, use .json or .csv", path, ext)
	}
}

// decodeJSONBatch reads an array of arrays of numbers.
func decodeJSONBatch(r io.Reader) ([][]float64, error) {
	var batch [][]float64
	if err := json.NewDecoder(r).Decode(&batch); err != nil {
		return nil, errors.Wrap(err, "decoding JSON batch")
	}
	return batch, nil
}

// decodeCSVBatch reads a CSV with a header row: each following row is one example, each column one feature.
func decodeCSVBatch(r io.Reader) ([][]float64, error) {
	df := dataframe.ReadCSV(r,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.Float))
	if df.Err != nil {
		return nil, errors.Wrap(df.Err, "decoding CSV batch")
	}
	numRows, numCols := df.Dims()
	names := df.Names()
	batch := make([][]float64, numRows)
	for row := range numRows {
		batch[row] = make([]float64, numCols)
		for col := range numCols {
			v := df.Elem(row, col).Float()
			if math.IsNaN(v) {
				return nil, errors.Errorf("CSV batch: row #%d, column %q is not a number", row, names[col])
			}
			batch[row][col] = v
		}
	}
	return batch, nil
}

// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	lgtable "github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/gomlx/fcnet/pkg/ml/fnn"
)

var (
	headerRowStyle = lipgloss.NewStyle().Reverse(true).
			Padding(0, 2, 0, 2).Align(lipgloss.Center)
	oddRowStyle = lipgloss.NewStyle().Faint(false).
			PaddingLeft(1).PaddingRight(1)
	evenRowStyle = lipgloss.NewStyle().Faint(true).
			PaddingLeft(1).PaddingRight(1)

	titleStyle = lipgloss.NewStyle().Bold(true).Padding(1, 4, 1, 4)
)

func newPlainTable(alignments ...lipgloss.Position) *lgtable.Table {
	return lgtable.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("99"))).
		StyleFunc(func(row, col int) (s lipgloss.Style) {
			if row < 0 {
				s = headerRowStyle
				return
			}
			switch {
			case row%2 == 0:
				// Even row style.
				s = oddRowStyle
			default:
				// Odd row style
				s = evenRowStyle
			}
			alignment := lipgloss.Left
			if col < len(alignments) {
				alignment = alignments[col]
			} else if len(alignments) > 0 {
				alignment = alignments[len(alignments)-1]
			}
			s = s.Align(alignment)
			return
		})
}

// summaryTable describes the layers of the network: one row per weight matrix plus a total.
func summaryTable(net *fnn.Network) *lgtable.Table {
	table := newPlainTable(lipgloss.Right, lipgloss.Left, lipgloss.Right)
	table.Headers("layer", "weights", "inputs", "outputs", "# parameters")
	for ii, shape := range net.Shapes() {
		table.Row(strconv.Itoa(ii), shape.String(),
			humanize.Comma(int64(shape.Rows-1))+" + bias",
			humanize.Comma(int64(shape.Cols)),
			humanize.Comma(int64(shape.Size())))
	}
	table.Row("total", "", humanize.Comma(int64(net.InputWidth())), humanize.Comma(int64(net.OutputWidth())),
		humanize.Comma(int64(net.NumParameters())))
	return table
}

// printSummary writes the summary to stderr, keeping stdout for the outputs.
func printSummary(net *fnn.Network) {
	_, _ = fmt.Fprintln(os.Stderr, titleStyle.Render(fmt.Sprintf("Network %v", net.Widths())))
	_, _ = fmt.Fprintln(os.Stderr, summaryTable(net).Render())
}

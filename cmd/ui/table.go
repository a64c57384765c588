/* SPDX-License-Identifier: Apache-2.0 */
/* Copyright Contributors to the prettylog project. */

// Package ui handles the bits of prettylog that talk to a human: table
// rendering through an arbitrary log stream and the removal confirmation
// prompt.
package ui

import (
	"strings"

	errs "github.com/spmarsden/prettylog/cmd/errors"
)

// StreamFunc consumes one rendered line at a time. log.Info and friends
// satisfy it directly.
type StreamFunc func(args ...interface{})

// Column alignments
const (
	AlignLeft   = "<"
	AlignRight  = ">"
	AlignCentre = "^"
)

// PrintTable renders headers and rows as a boxed table, sized to the
// longest cell of each column, emitting one line per call to stream
func PrintTable(headers []string, rows [][]string, stream StreamFunc) {
	widths := make([]int, len(headers))
	for i, header := range headers {
		widths[i] = len([]rune(header))
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len([]rune(cell)) > widths[i] {
				widths[i] = len([]rune(cell))
			}
		}
	}

	align := make([]string, len(widths))
	for i := range align {
		align[i] = AlignLeft
	}

	stream(rule(widths, "┌─", "─┬─", "─┐"))
	stream(renderRow(headers, widths, align))
	stream(rule(widths, "├─", "─┼─", "─┤"))
	for _, row := range rows {
		stream(renderRow(row, widths, align))
	}
	stream(rule(widths, "└─", "─┴─", "─┘"))
}

// ContinuousTable renders a table row by row, so lines can be emitted as
// results arrive instead of all at once
type ContinuousTable struct {
	colWidths []int
	colAlign  []string
	stream    StreamFunc
}

// NewContinuousTable validates the layout and returns a table writing
// to stream by default
func NewContinuousTable(colWidths []int, colAlign []string, stream StreamFunc) (*ContinuousTable, error) {
	if len(colWidths) == 0 || len(colWidths) != len(colAlign) {
		return nil, errs.ErrBadTableLayout
	}
	for _, width := range colWidths {
		if width <= 0 {
			return nil, errs.ErrBadTableLayout
		}
	}
	for _, align := range colAlign {
		if align != AlignLeft && align != AlignRight && align != AlignCentre {
			return nil, errs.ErrBadTableLayout
		}
	}

	return &ContinuousTable{
		colWidths: colWidths,
		colAlign:  colAlign,
		stream:    stream,
	}, nil
}

// Start prints the opening bar of the table
func (t *ContinuousTable) Start() {
	t.stream(rule(t.colWidths, "┌─", "─┬─", "─┐"))
}

// End prints the closing bar of the table
func (t *ContinuousTable) End() {
	t.stream(rule(t.colWidths, "└─", "─┴─", "─┘"))
}

// HR prints a horizontal rule, typically between the header and the data
func (t *ContinuousTable) HR() {
	t.stream(rule(t.colWidths, "├─", "─┼─", "─┤"))
}

// Row prints one row with the table's default alignment and stream
func (t *ContinuousTable) Row(cells ...string) {
	t.stream(renderRow(cells, t.colWidths, t.colAlign))
}

// HeaderRow prints one row with all cells centred
func (t *ContinuousTable) HeaderRow(cells ...string) {
	align := make([]string, len(t.colWidths))
	for i := range align {
		align[i] = AlignCentre
	}
	t.stream(renderRow(cells, t.colWidths, align))
}

// RowTo prints one row through an alternative stream, e.g. log.Warn to
// highlight a single result
func (t *ContinuousTable) RowTo(stream StreamFunc, cells ...string) {
	stream(renderRow(cells, t.colWidths, t.colAlign))
}

func rule(widths []int, left, middle, right string) string {
	var bar strings.Builder
	bar.WriteString(left)
	for i, width := range widths {
		bar.WriteString(strings.Repeat("─", width))
		if i < len(widths)-1 {
			bar.WriteString(middle)
		}
	}
	bar.WriteString(right)
	return bar.String()
}

func renderRow(cells []string, widths []int, align []string) string {
	var row strings.Builder
	row.WriteString("│ ")
	for i, width := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		row.WriteString(pad(cell, width, align[i]))
		row.WriteString(" │")
		if i < len(widths)-1 {
			row.WriteString(" ")
		}
	}
	return row.String()
}

func pad(cell string, width int, align string) string {
	gap := width - len([]rune(cell))
	if gap <= 0 {
		return cell
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", gap) + cell
	case AlignCentre:
		left := gap / 2
		return strings.Repeat(" ", left) + cell + strings.Repeat(" ", gap-left)
	default:
		return cell + strings.Repeat(" ", gap)
	}
}

package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Table lays out column-aligned rows as plain text lines. Cells wider
// than maxCell wrap onto continuation lines. The returned slice starts
// with the header lines, then a dashed separator, then the rows;
// headerLines reports how many lines belong to the header so callers can
// style them.
func Table(headers []string, rows [][]string, maxCell int) (lines []string, headerLines int) {
	cols := len(headers)
	if cols == 0 {
		return nil, 0
	}

	wrapRow := func(cells []string) ([][]string, int) {
		wrapped := make([][]string, cols)
		height := 1
		for c := 0; c < cols; c++ {
			var cell string
			if c < len(cells) {
				cell = cells[c]
			}
			wrapped[c] = wrapCell(cell, maxCell)
			if len(wrapped[c]) > height {
				height = len(wrapped[c])
			}
		}
		return wrapped, height
	}

	header, headerHeight := wrapRow(headers)
	body := make([][][]string, len(rows))
	heights := make([]int, len(rows))
	for i, row := range rows {
		body[i], heights[i] = wrapRow(row)
	}

	// Widths are display cells, not bytes, so multibyte names line up.
	widths := make([]int, cols)
	measure := func(cells [][]string) {
		for c, cellLines := range cells {
			for _, line := range cellLines {
				if w := lipgloss.Width(line); w > widths[c] {
					widths[c] = w
				}
			}
		}
	}
	measure(header)
	for _, row := range body {
		measure(row)
	}

	render := func(cells [][]string, height int) []string {
		out := make([]string, height)
		for ln := 0; ln < height; ln++ {
			parts := make([]string, cols)
			for c := 0; c < cols; c++ {
				var cell string
				if ln < len(cells[c]) {
					cell = cells[c][ln]
				}
				parts[c] = cell + strings.Repeat(" ", widths[c]-lipgloss.Width(cell))
			}
			out[ln] = strings.TrimRight(strings.Join(parts, "  "), " ")
		}
		return out
	}

	lines = render(header, headerHeight)
	headerLines = len(lines)

	separators := make([]string, cols)
	for c, w := range widths {
		separators[c] = strings.Repeat("-", w)
	}
	lines = append(lines, strings.Join(separators, "  "))

	for i, row := range body {
		lines = append(lines, render(row, heights[i])...)
	}
	return lines, headerLines
}

// wrapCell word-wraps a cell and hard-breaks words wider than max.
func wrapCell(text string, max int) []string {
	if max <= 0 {
		return []string{text}
	}

	var lines []string
	for _, line := range WrapText(text, max) {
		lines = append(lines, hardBreak(line, max)...)
	}
	if lines == nil {
		lines = []string{""}
	}
	return lines
}

// hardBreak splits line into chunks at most max cells wide, keeping
// runes whole. A single rune wider than max gets its own chunk.
func hardBreak(line string, max int) []string {
	if lipgloss.Width(line) <= max {
		return []string{line}
	}

	var parts []string
	var b strings.Builder
	width := 0
	for _, r := range line {
		rw := lipgloss.Width(string(r))
		if width+rw > max && b.Len() > 0 {
			parts = append(parts, b.String())
			b.Reset()
			width = 0
		}
		b.WriteRune(r)
		width += rw
	}
	if b.Len() > 0 {
		parts = append(parts, b.String())
	}
	return parts
}

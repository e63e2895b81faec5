// Package stats renders analysis results and benchmark timings as text.
package stats

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

type column struct {
	title string
	right bool
}

func formatTable(cols []column, rows [][]string) []string {
	colCount := len(cols)
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}
	if colCount == 0 {
		return nil
	}

	widths := make([]int, colCount)
	right := make([]bool, colCount)
	headers := make([]string, colCount)
	for i, c := range cols {
		headers[i] = c.title
		right[i] = c.right
		widths[i] = runewidth.StringWidth(c.title)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	lines := make([]string, 0, len(rows)+1)
	if len(cols) > 0 {
		lines = append(lines, formatRow(headers, widths, right))
	}
	for _, row := range rows {
		lines = append(lines, formatRow(row, widths, right))
	}
	return lines
}

func formatRow(row []string, widths []int, right []bool) string {
	var b strings.Builder
	for i, width := range widths {
		cell := ""
		if i < len(row) {
			cell = row[i]
		}
		if i > 0 {
			b.WriteByte(' ')
		}
		if right[i] {
			b.WriteString(runewidth.FillLeft(cell, width))
		} else {
			b.WriteString(runewidth.FillRight(cell, width))
		}
	}
	return strings.TrimRight(b.String(), " ")
}

package reportui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func padLine(line string, width int) string {
	if lineWidth := lipgloss.Width(line); lineWidth < width {
		return line + strings.Repeat(" ", width-lineWidth)
	}
	return line
}

// fitLines pads every line to width and clips or fills to exactly height lines.
func fitLines(s string, width, height int) string {
	if width <= 0 || height <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for i, line := range lines {
		lines[i] = padLine(line, width)
	}
	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", width))
	}
	return strings.Join(lines, "\n")
}

func truncateLine(s string, width int) string {
	runes := []rune(s)
	if width <= 0 || len(runes) <= width {
		return s
	}
	if width <= 3 {
		return string(runes[:width])
	}
	return string(runes[:width-3]) + "..."
}

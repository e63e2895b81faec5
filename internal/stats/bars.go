package stats

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/verte-zerg/wordstats/internal/textstats"
)

const (
	barChar             = "█"
	minBarWidth         = 10
	terminalWidthBackup = 80
)

var barStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))

// RenderBars prints one horizontal bar per top entry, scaled to the largest
// count so the whole line fits in width columns.
func RenderBars(w io.Writer, top []textstats.Entry, width int, useColor bool) error {
	for _, line := range BarLines(top, width, useColor) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// BarLines builds the lines printed by RenderBars.
func BarLines(top []textstats.Entry, width int, useColor bool) []string {
	if len(top) == 0 {
		return nil
	}
	if width <= 0 {
		width = TerminalWidth()
	}
	labelWidth, countWidth, maxCount := 0, 0, 0
	for _, e := range top {
		labelWidth = max(labelWidth, runewidth.StringWidth(e.Word))
		countWidth = max(countWidth, len(FormatCount(e.Count)))
		maxCount = max(maxCount, e.Count)
	}
	barWidth := max(minBarWidth, width-labelWidth-countWidth-2)

	lines := make([]string, 0, len(top))
	for _, e := range top {
		n := 0
		if maxCount > 0 {
			n = e.Count * barWidth / maxCount
		}
		if n == 0 && e.Count > 0 {
			n = 1
		}
		bar := strings.Repeat(barChar, n)
		if useColor {
			bar = barStyle.Render(bar)
		}
		pad := strings.Repeat(" ", barWidth-n)
		lines = append(lines, fmt.Sprintf("%s %s%s %*s",
			runewidth.FillRight(e.Word, labelWidth), bar, pad, countWidth, FormatCount(e.Count)))
	}
	return lines
}

// TerminalWidth returns the width of stdout or a fallback when it is not a terminal.
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return terminalWidthBackup
	}
	return width
}

// ShouldUseColor reports whether w is a terminal and NO_COLOR is unset.
func ShouldUseColor(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}

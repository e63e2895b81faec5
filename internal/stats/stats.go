package stats

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/verte-zerg/wordstats/internal/textstats"
)

var sparkChars = []rune("▁▂▃▄▅▆▇█")

// Timed pairs an engine's report with how long it took.
type Timed struct {
	Engine   string
	Report   textstats.Report
	Duration time.Duration
}

// MovingAverage computes a rolling mean over the provided window size.
func MovingAverage(values []float64, window int) []float64 {
	out := make([]float64, len(values))
	if window <= 1 {
		copy(out, values)
		return out
	}
	var sum float64
	for i, v := range values {
		sum += v
		n := i + 1
		if i >= window {
			sum -= values[i-window]
			n = window
		}
		out[i] = sum / float64(n)
	}
	return out
}

// Sparkline renders values as a single line of block characters.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if hi-lo < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	top := len(sparkChars) - 1
	var b strings.Builder
	for _, v := range values {
		idx := int(math.Round((v - lo) / (hi - lo) * float64(top)))
		b.WriteRune(sparkChars[max(0, min(idx, top))])
	}
	return b.String()
}

// RenderReport prints the summary and the ranked top list of a report.
func RenderReport(w io.Writer, r textstats.Report) error {
	longest := "-"
	if word, ok := r.Longest(); ok {
		longest = fmt.Sprintf("%s (%d)", word, len(word))
	}
	summary := []string{
		"Summary",
		fmt.Sprintf("Words: %s", FormatCount(r.Words())),
		fmt.Sprintf("Unique words: %s", FormatCount(r.UniqueWords())),
		fmt.Sprintf("Letters: %s", FormatCount(r.AlphaChars())),
		fmt.Sprintf("Longest word: %s", longest),
		"",
	}
	for _, line := range summary {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	top := r.Top()
	if len(top) == 0 {
		_, err := fmt.Fprintln(w, "No words found.")
		return err
	}
	if _, err := fmt.Fprintf(w, "Top %d words\n", len(top)); err != nil {
		return err
	}
	rows := make([][]string, 0, len(top))
	for i, e := range top {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			e.Word,
			FormatCount(e.Count),
			fmt.Sprintf("%.2f%%", Share(e.Count, r.Words())),
		})
	}
	cols := []column{{title: "Rank", right: true}, {title: "Word"}, {title: "Count", right: true}, {title: "Share", right: true}}
	return writeLines(w, formatTable(cols, rows))
}

// RenderComparison prints timings of several engines over the same input,
// the speedup of the fastest over the slowest and any disagreement between
// their reports.
func RenderComparison(w io.Writer, inputBytes int, runs []Timed) error {
	if len(runs) == 0 {
		_, err := fmt.Fprintln(w, "No runs.")
		return err
	}
	if _, err := fmt.Fprintf(w, "Analyzed %s bytes\n", FormatCount(inputBytes)); err != nil {
		return err
	}
	rows := make([][]string, 0, len(runs))
	fastest, slowest := 0, 0
	for i, run := range runs {
		longest, _ := run.Report.Longest()
		rows = append(rows, []string{
			run.Engine,
			fmt.Sprintf("%.3f", float64(run.Duration)/float64(time.Millisecond)),
			FormatCount(run.Report.Words()),
			FormatCount(run.Report.UniqueWords()),
			FormatCount(run.Report.AlphaChars()),
			longest,
		})
		if run.Duration < runs[fastest].Duration {
			fastest = i
		}
		if run.Duration > runs[slowest].Duration {
			slowest = i
		}
	}
	cols := []column{
		{title: "Engine"},
		{title: "Time (ms)", right: true},
		{title: "Words", right: true},
		{title: "Unique", right: true},
		{title: "Letters", right: true},
		{title: "Longest"},
	}
	if err := writeLines(w, formatTable(cols, rows)); err != nil {
		return err
	}
	if len(runs) > 1 && runs[fastest].Duration > 0 {
		speedup := float64(runs[slowest].Duration) / float64(runs[fastest].Duration)
		if _, err := fmt.Fprintf(w, "Speedup: %.2fx (%s vs %s)\n", speedup, runs[fastest].Engine, runs[slowest].Engine); err != nil {
			return err
		}
	}
	for _, run := range runs[1:] {
		if !run.Report.Equal(runs[0].Report) {
			if _, err := fmt.Fprintf(w, "Warning: %s report differs from %s\n", run.Engine, runs[0].Engine); err != nil {
				return err
			}
		}
	}
	return nil
}

// RenderHistory prints per-engine timing summaries with a smoothed sparkline.
func RenderHistory(w io.Writer, h History, window int) error {
	if len(h.Engines) == 0 {
		_, err := fmt.Fprintln(w, "No benchmark runs recorded.")
		return err
	}
	rows := make([][]string, 0, len(h.Engines))
	for _, e := range h.Engines {
		rows = append(rows, []string{
			e.Engine,
			fmt.Sprintf("%d", e.Runs),
			formatMillis(e.Best),
			formatMillis(e.Mean),
			formatMillis(e.Last),
			Sparkline(MovingAverage(e.MillisSeries(), window)),
		})
	}
	cols := []column{
		{title: "Engine"},
		{title: "Runs", right: true},
		{title: "Best (ms)", right: true},
		{title: "Mean (ms)", right: true},
		{title: "Last (ms)", right: true},
		{title: "Trend"},
	}
	return writeLines(w, formatTable(cols, rows))
}

// Share returns count as a percentage of total.
func Share(count, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(count) * 100 / float64(total)
}

// FormatCount renders n with thousands separators.
func FormatCount(n int) string {
	s := strconv.Itoa(n)
	start := 0
	if n < 0 {
		start = 1
	}
	out := make([]byte, 0, len(s)+len(s)/3)
	for i := 0; i < len(s); i++ {
		if i > start && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, s[i])
	}
	return string(out)
}

func formatMillis(d time.Duration) string {
	return fmt.Sprintf("%.3f", float64(d)/float64(time.Millisecond))
}

func writeLines(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

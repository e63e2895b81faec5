package stats

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/verte-zerg/wordstats/internal/textstats"
)

func TestMovingAverage(t *testing.T) {
	got := MovingAverage([]float64{2, 4, 6, 8}, 2)
	want := []float64{2, 3, 5, 7}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("index %d: expected %v, got %v", i, want[i], got[i])
		}
	}
	same := MovingAverage([]float64{1, 5}, 1)
	if same[0] != 1 || same[1] != 5 {
		t.Fatalf("expected copy for window 1, got %v", same)
	}
	if len(MovingAverage(nil, 3)) != 0 {
		t.Fatalf("expected empty output")
	}
}

func TestSparkline(t *testing.T) {
	if got := Sparkline([]float64{0, 7}); got != "▁█" {
		t.Fatalf("unexpected sparkline %q", got)
	}
	if got := Sparkline([]float64{3, 3, 3}); got != "▅▅▅" {
		t.Fatalf("unexpected flat sparkline %q", got)
	}
	if Sparkline(nil) != "" {
		t.Fatalf("expected empty sparkline")
	}
}

func TestFormatCount(t *testing.T) {
	cases := map[int]string{0: "0", 999: "999", 1000: "1,000", 1234567: "1,234,567", -1234: "-1,234"}
	for in, want := range cases {
		if got := FormatCount(in); got != want {
			t.Fatalf("FormatCount(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestShare(t *testing.T) {
	if Share(1, 4) != 25 || Share(3, 0) != 0 {
		t.Fatalf("unexpected share values")
	}
}

func TestRenderReport(t *testing.T) {
	var buf bytes.Buffer
	r := textstats.Analyze([]byte("The Quick fox jumps. The fox runs!"), textstats.WithTopN(2))
	if err := RenderReport(&buf, r); err != nil {
		t.Fatalf("render report: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"Words: 7",
		"Unique words: 5",
		"Letters: 26",
		"Longest word: quick (5)",
		"Top 2 words",
		"   1 the      2 28.57%",
		"   2 fox      2 28.57%",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestRenderReportEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderReport(&buf, textstats.Analyze(nil)); err != nil {
		t.Fatalf("render report: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Longest word: -") || !strings.Contains(out, "No words found.") {
		t.Fatalf("unexpected empty report:\n%s", out)
	}
}

func TestRenderComparison(t *testing.T) {
	text := []byte("a b b c")
	same := textstats.Analyze(text)
	runs := []Timed{
		{Engine: "naive", Report: textstats.AnalyzeNaive(string(text), textstats.DefaultTopN), Duration: 10 * time.Millisecond},
		{Engine: "sequential", Report: same, Duration: 2 * time.Millisecond},
		{Engine: "broken", Report: textstats.Analyze([]byte("zzz")), Duration: 4 * time.Millisecond},
	}
	var buf bytes.Buffer
	if err := RenderComparison(&buf, len(text), runs); err != nil {
		t.Fatalf("render comparison: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"Analyzed 7 bytes",
		"Speedup: 5.00x (sequential vs naive)",
		"Warning: broken report differs from naive",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
	if strings.Contains(out, "sequential report differs") {
		t.Fatalf("unexpected mismatch warning:\n%s", out)
	}

	buf.Reset()
	if err := RenderComparison(&buf, 0, nil); err != nil || !strings.Contains(buf.String(), "No runs.") {
		t.Fatalf("unexpected empty comparison: %q %v", buf.String(), err)
	}
}

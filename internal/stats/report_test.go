package stats

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/verte-zerg/wordstats/internal/model"
	"github.com/verte-zerg/wordstats/internal/store"
)

func TestBuildHistory(t *testing.T) {
	dir := t.TempDir()
	st, err := store.Open(filepath.Join(dir, "wordstats.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})

	ctx := context.Background()
	base := time.Unix(0, 0)
	for i := 0; i < 3; i++ {
		at := base.Add(time.Duration(i) * time.Minute)
		_, err := st.InsertRuns(ctx, []model.BenchRun{
			{RecordedAt: at, Engine: model.EngineNaive, DurationNs: int64(time.Duration(10+i) * time.Millisecond)},
			{RecordedAt: at, Engine: model.EngineSequential, DurationNs: int64(time.Duration(3-i) * time.Millisecond)},
		})
		if err != nil {
			t.Fatalf("insert runs: %v", err)
		}
	}

	h, err := BuildHistory(ctx, st, model.HistoryConfig{})
	if err != nil {
		t.Fatalf("build history: %v", err)
	}
	if len(h.Runs) != 6 {
		t.Fatalf("expected 6 runs, got %d", len(h.Runs))
	}
	if len(h.Engines) != 2 {
		t.Fatalf("expected 2 engines, got %d", len(h.Engines))
	}
	naive := h.Engines[0]
	if naive.Engine != model.EngineNaive || naive.Runs != 3 {
		t.Fatalf("unexpected naive summary: %+v", naive)
	}
	if naive.Best != 10*time.Millisecond || naive.Last != 12*time.Millisecond || naive.Mean != 11*time.Millisecond {
		t.Fatalf("unexpected naive timings: %+v", naive)
	}
	seq := h.Engines[1]
	if seq.Best != time.Millisecond || seq.Last != time.Millisecond {
		t.Fatalf("unexpected sequential timings: %+v", seq)
	}

	var buf bytes.Buffer
	if err := RenderHistory(&buf, h, 2); err != nil {
		t.Fatalf("render history: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "naive") || !strings.Contains(out, "11.000") {
		t.Fatalf("unexpected history output:\n%s", out)
	}
}

func TestRenderHistoryEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderHistory(&buf, History{}, 5); err != nil {
		t.Fatalf("render history: %v", err)
	}
	if !strings.Contains(buf.String(), "No benchmark runs recorded.") {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

package stats

import (
	"context"
	"time"

	"github.com/verte-zerg/wordstats/internal/model"
	"github.com/verte-zerg/wordstats/internal/store"
)

// History holds recorded benchmark runs grouped by engine.
type History struct {
	Runs    []model.BenchRun
	Engines []EngineSummary
}

// EngineSummary aggregates the runs of one engine.
type EngineSummary struct {
	Engine    string
	Runs      int
	Best      time.Duration
	Mean      time.Duration
	Last      time.Duration
	Durations []time.Duration
}

// MillisSeries returns the durations in milliseconds, oldest first.
func (e EngineSummary) MillisSeries() []float64 {
	out := make([]float64, len(e.Durations))
	for i, d := range e.Durations {
		out[i] = float64(d) / float64(time.Millisecond)
	}
	return out
}

// BuildHistory loads runs from the store and summarizes them per engine.
func BuildHistory(ctx context.Context, st *store.Store, cfg model.HistoryConfig) (History, error) {
	runs, err := st.ListRuns(ctx, cfg)
	if err != nil {
		return History{}, err
	}
	return History{Runs: runs, Engines: summarizeRuns(runs)}, nil
}

// summarizeRuns groups runs by engine in order of first appearance.
func summarizeRuns(runs []model.BenchRun) []EngineSummary {
	var out []EngineSummary
	index := map[string]int{}
	for _, run := range runs {
		i, ok := index[run.Engine]
		if !ok {
			i = len(out)
			index[run.Engine] = i
			out = append(out, EngineSummary{Engine: run.Engine})
		}
		d := time.Duration(run.DurationNs)
		s := &out[i]
		if s.Runs == 0 || d < s.Best {
			s.Best = d
		}
		s.Runs++
		s.Last = d
		s.Durations = append(s.Durations, d)
	}
	for i := range out {
		var sum time.Duration
		for _, d := range out[i].Durations {
			sum += d
		}
		out[i].Mean = sum / time.Duration(out[i].Runs)
	}
	return out
}

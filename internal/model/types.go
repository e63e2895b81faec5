// Package model defines shared data structures.
package model

import "time"

// Engine names recorded with benchmark runs.
const (
	EngineNaive      = "naive"
	EngineSequential = "sequential"
	EngineParallel   = "parallel"
)

// AnalyzeConfig defines analysis settings.
type AnalyzeConfig struct {
	Top     int
	Workers int
	JSON    bool
}

// GenerateConfig defines synthetic text settings.
type GenerateConfig struct {
	Words    int
	CapsPct  float64
	PunctPct float64
	PunctSet string
	Vocab    string
	Lang     string
	Cycle    bool
	Seed     int64
}

// BenchConfig defines benchmark settings.
type BenchConfig struct {
	Words   int
	Repeat  int
	Record  bool
	Top     int
	Workers int
}

// HistoryConfig defines filters for recorded benchmark runs.
type HistoryConfig struct {
	Engine string
	Last   int
	Window int
}

// BenchRun is one timed engine execution. Only timings and sizes are kept,
// never the words themselves.
type BenchRun struct {
	ID          int64
	RecordedAt  time.Time
	Engine      string
	InputBytes  int
	Words       int
	UniqueWords int
	Workers     int
	DurationNs  int64
}

// Package store handles SQLite persistence of benchmark timings.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/verte-zerg/wordstats/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Fixed-width timestamps keep recorded_at sortable as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Store wraps SQLite access for benchmark runs.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS bench_runs (
			id INTEGER PRIMARY KEY,
			recorded_at TEXT NOT NULL,
			engine TEXT NOT NULL,
			input_bytes INTEGER NOT NULL,
			words INTEGER NOT NULL,
			unique_words INTEGER NOT NULL,
			workers INTEGER NOT NULL,
			duration_ns INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_bench_runs_recorded_at ON bench_runs(recorded_at);`,
		`CREATE INDEX IF NOT EXISTS idx_bench_runs_engine ON bench_runs(engine);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// InsertRuns stores the runs of one benchmark invocation in a single
// transaction and returns their ids.
func (s *Store) InsertRuns(ctx context.Context, runs []model.BenchRun) (ids []int64, err error) {
	if len(runs) == 0 {
		return nil, nil
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO bench_runs (recorded_at, engine, input_bytes, words, unique_words, workers, duration_ns)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := stmt.Close(); cerr != nil {
			// Best-effort statement close.
			_ = cerr
		}
	}()

	ids = make([]int64, 0, len(runs))
	for _, run := range runs {
		if run.Engine == "" {
			return nil, fmt.Errorf("bench run has no engine")
		}
		res, err := stmt.ExecContext(ctx,
			run.RecordedAt.UTC().Format(timeLayout),
			run.Engine,
			run.InputBytes,
			run.Words,
			run.UniqueWords,
			run.Workers,
			run.DurationNs,
		)
		if err != nil {
			return nil, err
		}
		id, err := res.LastInsertId()
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	if err = tx.Commit(); err != nil {
		return nil, err
	}
	return ids, nil
}

// ListRuns returns recorded runs ordered oldest first, filtered by engine
// and limited to the most recent cfg.Last runs when positive.
func (s *Store) ListRuns(ctx context.Context, cfg model.HistoryConfig) ([]model.BenchRun, error) {
	clauses := []string{"1=1"}
	args := []any{}
	if cfg.Engine != "" {
		clauses = append(clauses, "engine = ?")
		args = append(args, cfg.Engine)
	}
	limit := -1
	if cfg.Last > 0 {
		limit = cfg.Last
	}
	args = append(args, limit)
	query := fmt.Sprintf(`SELECT id, recorded_at, engine, input_bytes, words, unique_words, workers, duration_ns
		FROM (
			SELECT * FROM bench_runs
			WHERE %s
			ORDER BY recorded_at DESC, id DESC
			LIMIT ?
		)
		ORDER BY recorded_at ASC, id ASC`, strings.Join(clauses, " AND "))
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var runs []model.BenchRun
	for rows.Next() {
		var run model.BenchRun
		var recordedAt string
		if err := rows.Scan(&run.ID, &recordedAt, &run.Engine, &run.InputBytes, &run.Words, &run.UniqueWords, &run.Workers, &run.DurationNs); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(timeLayout, recordedAt)
		if err != nil {
			return nil, err
		}
		run.RecordedAt = parsed
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return runs, nil
}

// ListEngines returns the distinct engine names that have recorded runs.
func (s *Store) ListEngines(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT DISTINCT engine FROM bench_runs ORDER BY engine`)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var engines []string
	for rows.Next() {
		var engine string
		if err := rows.Scan(&engine); err != nil {
			return nil, err
		}
		engines = append(engines, engine)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return engines, nil
}

package cache

import (
	"context"
	"fmt"
)

// Run records one batch transform.
type Run struct {
	ID    string
	Files []RunFile
}

// RunFile is one file of a Run.
type RunFile struct {
	Path         string
	TransformKey string
	Cached       bool
}

// Stats summarizes the cache contents.
type Stats struct {
	Entries int `json:"entries"`
	Runs    int `json:"runs"`
	Hits    int `json:"hits"`
}

// RecordRun writes the run and its files in a single transaction. Every
// TransformKey must already be stored (foreign key).
func (s *Store) RecordRun(ctx context.Context, run Run) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("record run: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after Commit

	hits := 0
	for _, f := range run.Files {
		if f.Cached {
			hits++
		}
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO runs (id, file_count, cache_hits) VALUES (?, ?, ?)
	`, run.ID, len(run.Files), hits); err != nil {
		return fmt.Errorf("record run %s: %w", run.ID, err)
	}

	for _, f := range run.Files {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO run_files (run_id, path, transform_key, cached) VALUES (?, ?, ?, ?)
		`, run.ID, f.Path, f.TransformKey, f.Cached); err != nil {
			return fmt.Errorf("record run %s file %s: %w", run.ID, f.Path, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("record run %s: commit: %w", run.ID, err)
	}
	return nil
}

// RunFiles returns the files recorded for a run, ordered by path.
func (s *Store) RunFiles(ctx context.Context, runID string) ([]RunFile, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT path, transform_key, cached FROM run_files
		WHERE run_id = ?
		ORDER BY path
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("run files: %w", err)
	}
	defer rows.Close()

	var files []RunFile
	for rows.Next() {
		var f RunFile
		if err := rows.Scan(&f.Path, &f.TransformKey, &f.Cached); err != nil {
			return nil, fmt.Errorf("run files: %w", err)
		}
		files = append(files, f)
	}
	return files, rows.Err()
}

// Stats returns entry, run and cache-hit counts.
func (s *Store) Stats(ctx context.Context) (Stats, error) {
	var st Stats
	err := s.db.QueryRowContext(ctx, `
		SELECT
			(SELECT COUNT(*) FROM transforms),
			(SELECT COUNT(*) FROM runs),
			(SELECT COALESCE(SUM(cache_hits), 0) FROM runs)
	`).Scan(&st.Entries, &st.Runs, &st.Hits)
	if err != nil {
		return Stats{}, fmt.Errorf("cache stats: %w", err)
	}
	return st, nil
}

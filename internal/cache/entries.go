package cache

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/roach88/jscompat/internal/canonical"
)

// Entry is one cached transform result.
type Entry struct {
	Key        string
	SourceHash string
	ConfigHash string
	Output     string
	Helpers    []string // helper categories, sorted
	Rewrites   int
	Changed    bool
}

// Key computes the cache key for a source, a configuration and the
// toolchain (pass revision and embedded helper sources) that produced the
// output. A new release with different output never hits older entries.
func Key(sourceHash, configHash, toolchainHash string) (string, error) {
	return canonical.HashValue(canonical.DomainTransform, map[string]any{
		"source_hash":    sourceHash,
		"config_hash":    configHash,
		"toolchain_hash": toolchainHash,
	})
}

// Get returns the entry for key. The second result is false on a miss.
func (s *Store) Get(ctx context.Context, key string) (*Entry, bool, error) {
	var (
		e           Entry
		helpersJSON string
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT key, source_hash, config_hash, output, helpers, rewrites, changed
		FROM transforms
		WHERE key = ?
	`, key).Scan(&e.Key, &e.SourceHash, &e.ConfigHash, &e.Output, &helpersJSON, &e.Rewrites, &e.Changed)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get transform: %w", err)
	}

	if err := json.Unmarshal([]byte(helpersJSON), &e.Helpers); err != nil {
		return nil, false, fmt.Errorf("get transform %s: helpers: %w", key, err)
	}
	return &e, true, nil
}

// Put stores e. Uses ON CONFLICT(key) DO NOTHING: keys are content hashes,
// so a second write of the same key carries the same data.
func (s *Store) Put(ctx context.Context, e Entry) error {
	if e.Helpers == nil {
		e.Helpers = []string{}
	}
	helpersJSON, err := canonical.Marshal(e.Helpers)
	if err != nil {
		return fmt.Errorf("put transform: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO transforms
		(key, source_hash, config_hash, output, helpers, rewrites, changed)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(key) DO NOTHING
	`,
		e.Key,
		e.SourceHash,
		e.ConfigHash,
		e.Output,
		string(helpersJSON),
		e.Rewrites,
		e.Changed,
	)
	if err != nil {
		return fmt.Errorf("put transform: %w", err)
	}
	return nil
}

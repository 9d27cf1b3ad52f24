package pipeline

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/roach88/jscompat/internal/cache"
)

// Batch is the outcome of TransformFiles.
type Batch struct {
	RunID   string   `json:"run_id,omitempty"` // set only when a cache records the run
	Results []Result `json:"results"`
}

// Changed returns the number of files whose output differs from the input.
func (b *Batch) Changed() int {
	n := 0
	for _, r := range b.Results {
		if r.Changed {
			n++
		}
	}
	return n
}

// TransformFiles reads and transforms every path with at most
// Config.Workers files in flight. Results are in input order. The first
// error cancels the files still pending and is returned.
func (p *Pipeline) TransformFiles(ctx context.Context, paths []string) (*Batch, error) {
	results := make([]Result, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.cfg.Workers)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			src, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read source: %w", err)
			}
			res, err := p.Transform(gctx, path, src)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	batch := &Batch{Results: results}
	if p.cache == nil {
		return batch, nil
	}

	run := cache.Run{ID: p.runIDs.Generate()}
	seen := make(map[string]bool, len(results))
	for _, r := range results {
		if seen[r.Path] {
			continue
		}
		seen[r.Path] = true
		run.Files = append(run.Files, cache.RunFile{
			Path:         r.Path,
			TransformKey: r.Key,
			Cached:       r.Cached,
		})
	}
	if err := p.cache.RecordRun(ctx, run); err != nil {
		return nil, err
	}
	batch.RunID = run.ID

	p.logger.Info("run recorded", "run_id", run.ID, "files", len(results))
	return batch, nil
}

package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/jscompat/internal/cache"
	"github.com/roach88/jscompat/internal/pipeline"
	"github.com/roach88/jscompat/internal/testutil"
)

func TestCacheCommand(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteFile(t, dir, "a.js", "typeof x;")
	db := filepath.Join(dir, "cache.db")

	opts := &TransformOptions{
		RootOptions: &RootOptions{Format: "text"},
		Cache:       db,
		RunIDs:      pipeline.NewFixedGenerator("run-1", "run-2"),
	}
	for i := 0; i < 2; i++ {
		c := NewTransformCommand(opts.RootOptions)
		c.SetOut(&bytes.Buffer{})
		c.SetContext(context.Background())
		require.NoError(t, runTransform(opts, []string{path}, c))
	}

	buf := &bytes.Buffer{}
	cmd := NewCacheCommand(&RootOptions{Format: "json"})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{db})
	require.NoError(t, cmd.Execute())

	var resp struct {
		Data cache.Stats `json:"data"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, cache.Stats{Entries: 1, Runs: 2, Hits: 1}, resp.Data)
}

func TestCacheCommand_Missing(t *testing.T) {
	errBuf := &bytes.Buffer{}
	cmd := NewCacheCommand(&RootOptions{Format: "text"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(errBuf)
	cmd.SetArgs([]string{filepath.Join(t.TempDir(), "none.db")})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, errBuf.String(), "cache not found")
}

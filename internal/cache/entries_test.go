package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEntry(t *testing.T) Entry {
	t.Helper()
	key, err := Key("source-hash", "config-hash", "toolchain-hash")
	require.NoError(t, err)
	return Entry{
		Key:        key,
		SourceHash: "source-hash",
		ConfigHash: "config-hash",
		Output:     "_typeof(x);\n",
		Helpers:    []string{"typeof"},
		Rewrites:   1,
		Changed:    true,
	}
}

func TestKey_Deterministic(t *testing.T) {
	a, err := Key("s", "c", "t")
	require.NoError(t, err)
	b, err := Key("s", "c", "t")
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Len(t, a, 64)
}

func TestKey_DependsOnEveryInput(t *testing.T) {
	base, err := Key("s", "c", "t")
	require.NoError(t, err)
	otherSource, err := Key("s2", "c", "t")
	require.NoError(t, err)
	otherConfig, err := Key("s", "c2", "t")
	require.NoError(t, err)
	otherToolchain, err := Key("s", "c", "t2")
	require.NoError(t, err)

	keys := []string{base, otherSource, otherConfig, otherToolchain}
	for i := range keys {
		for j := i + 1; j < len(keys); j++ {
			assert.NotEqual(t, keys[i], keys[j], "keys %d and %d", i, j)
		}
	}
}

func TestGet_Miss(t *testing.T) {
	s := openTestStore(t)

	e, ok, err := s.Get(context.Background(), "missing")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, e)
}

func TestPutGet_RoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	want := testEntry(t)

	require.NoError(t, s.Put(ctx, want))

	got, ok, err := s.Get(ctx, want.Key)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, want, *got)
}

func TestPut_NilHelpersStoredAsEmpty(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	e := testEntry(t)
	e.Helpers = nil
	e.Rewrites = 0
	e.Changed = false

	require.NoError(t, s.Put(ctx, e))

	got, ok, err := s.Get(ctx, e.Key)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []string{}, got.Helpers)
}

func TestPut_Idempotent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	e := testEntry(t)

	require.NoError(t, s.Put(ctx, e))

	// Same key again is ignored, not an error.
	dup := e
	dup.Output = "something else"
	require.NoError(t, s.Put(ctx, dup))

	got, _, err := s.Get(ctx, e.Key)
	require.NoError(t, err)
	assert.Equal(t, e.Output, got.Output)

	st, err := s.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, st.Entries)
}

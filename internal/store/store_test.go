package store_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/pulsenet/internal/store"
	"github.com/roach88/pulsenet/internal/testutil"
)

func openTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStore_runRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	gen := testutil.NewFixedTokenGenerator("run-0001")

	run := store.Run{
		ID:           gen.Generate(),
		CreatedAt:    time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC),
		WiringDigest: "abc123",
		Mode:         store.ModeTrigger,
		Answer:       243037165713371,
	}
	subs := []store.SubcircuitRecord{
		{RunID: run.ID, Root: "r2", End: "c2", CycleStart: 0, CycleEnd: 4096, Period: 4096},
		{RunID: run.ID, Root: "r1", End: "c1", CycleStart: 0, CycleEnd: 3917, Period: 3917},
	}
	require.NoError(t, s.WriteRun(ctx, run, subs))

	got, gotSubs, err := s.ReadRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, run.ID, got.ID)
	assert.True(t, got.CreatedAt.Equal(run.CreatedAt))
	assert.Equal(t, run.WiringDigest, got.WiringDigest)
	assert.Equal(t, run.Mode, got.Mode)
	assert.Equal(t, run.Answer, got.Answer)

	// Sub-circuits come back ordered by (root, end_module).
	require.Len(t, gotSubs, 2)
	assert.Equal(t, "r1", gotSubs[0].Root)
	assert.Equal(t, uint64(3917), gotSubs[0].Period)
	assert.Equal(t, "r2", gotSubs[1].Root)
	assert.Equal(t, uint64(4096), gotSubs[1].Period)
}

func TestStore_duplicateWriteIsNoOp(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	run := store.Run{
		ID:           "run-0001",
		CreatedAt:    time.Now(),
		WiringDigest: "abc123",
		Mode:         store.ModeCount,
		Presses:      1000,
		LowTotal:     8000,
		HighTotal:    4000,
		Answer:       32000000,
	}
	require.NoError(t, s.WriteRun(ctx, run, nil))

	// Rewriting the same ID with different values is silently ignored.
	run.Answer = 1
	require.NoError(t, s.WriteRun(ctx, run, nil))

	got, _, err := s.ReadRun(ctx, "run-0001")
	require.NoError(t, err)
	assert.Equal(t, uint64(32000000), got.Answer)

	runs, err := s.ReadRuns(ctx)
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}

func TestStore_readRunNotFound(t *testing.T) {
	s := openTestStore(t)
	_, _, err := s.ReadRun(context.Background(), "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrRunNotFound)
}

func TestStore_readRunsNewestFirst(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	base := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)

	for i, id := range []string{"run-0001", "run-0002", "run-0003"} {
		run := store.Run{
			ID:           id,
			CreatedAt:    base.Add(time.Duration(i) * time.Minute),
			WiringDigest: "abc123",
			Mode:         store.ModeCount,
			Presses:      1000,
			Answer:       uint64(i),
		}
		require.NoError(t, s.WriteRun(ctx, run, nil))
	}

	runs, err := s.ReadRuns(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 3)
	assert.Equal(t, "run-0003", runs[0].ID)
	assert.Equal(t, "run-0001", runs[2].ID)
}

func TestStore_openIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.db")

	s1, err := store.Open(path)
	require.NoError(t, err)
	require.NoError(t, s1.WriteRun(context.Background(), store.Run{
		ID: "run-0001", CreatedAt: time.Now(), WiringDigest: "d", Mode: store.ModeCount,
	}, nil))
	require.NoError(t, s1.Close())

	s2, err := store.Open(path)
	require.NoError(t, err)
	defer s2.Close()

	runs, err := s2.ReadRuns(context.Background())
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}

func TestUUIDv7Generator(t *testing.T) {
	gen := store.UUIDv7Generator{}
	a, b := gen.Generate(), gen.Generate()
	assert.Len(t, a, 36)
	assert.NotEqual(t, a, b)
}

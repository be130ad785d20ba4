package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifeline-app/lifeline-api/internal/store"
)

type stubCounts struct {
	counts store.Counts
	err    error
}

func (s stubCounts) Counts(ctx context.Context) (store.Counts, error) {
	return s.counts, s.err
}

func TestSnapshotCompletionRate(t *testing.T) {
	svc := NewStatsService(stubCounts{counts: store.Counts{
		Users:          10,
		Todos:          8,
		CompletedTodos: 2,
	}})

	snap, err := svc.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(10), snap.Users)
	assert.InDelta(t, 0.25, snap.CompletionRate, 1e-9)
}

func TestSnapshotNoTodos(t *testing.T) {
	svc := NewStatsService(stubCounts{})

	snap, err := svc.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Zero(t, snap.CompletionRate)
}

func TestSnapshotPropagatesError(t *testing.T) {
	svc := NewStatsService(stubCounts{err: errors.New("db down")})

	_, err := svc.Snapshot(context.Background())
	assert.Error(t, err)
}

package services

import (
	"context"

	"github.com/lifeline-app/lifeline-api/internal/store"
)

// CountSource provides the raw collection totals a snapshot is built
// from.
type CountSource interface {
	Counts(ctx context.Context) (store.Counts, error)
}

// StatsService assembles the admin dashboard overview.
type StatsService struct {
	source CountSource
}

func NewStatsService(source CountSource) *StatsService {
	return &StatsService{source: source}
}

// Snapshot is what the admin stats endpoint returns.
type Snapshot struct {
	store.Counts
	CompletionRate float64 `json:"completionRate"`
}

func (s *StatsService) Snapshot(ctx context.Context) (Snapshot, error) {
	counts, err := s.source.Counts(ctx)
	if err != nil {
		return Snapshot{}, err
	}

	snap := Snapshot{Counts: counts}
	if counts.Todos > 0 {
		snap.CompletionRate = float64(counts.CompletedTodos) / float64(counts.Todos)
	}
	return snap, nil
}

// Package cache holds computed score snapshots so repeated reads skip a
// full re-evaluation of the record history.
package cache

import (
	"context"

	"fitarena/internal/score"
)

// Scores caches the most recent breakdown. Implementations are free to
// drop entries at any time; callers must treat a miss as a recompute.
type Scores interface {
	Get(ctx context.Context) (score.Breakdown, bool)
	Set(ctx context.Context, b score.Breakdown)
	Invalidate(ctx context.Context)
}

type noop struct{}

// NewNoop returns a cache that never hits. Used when no Redis URL is
// configured.
func NewNoop() Scores { return noop{} }

func (noop) Get(context.Context) (score.Breakdown, bool) { return score.Breakdown{}, false }
func (noop) Set(context.Context, score.Breakdown)        {}
func (noop) Invalidate(context.Context)                  {}

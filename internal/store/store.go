package store

import (
	"context"
	"errors"

	"fitarena/internal/tracker"
)

var ErrNotFound = errors.New("entry not found")

// Store bundles the three independent record collections. Each collection
// keys entries by calendar date; listing carries no order guarantee, so
// consumers sort where order matters.
type Store struct {
	Weights  WeightStore
	Calories CalorieStore
	Workouts WorkoutStore
}

type WeightStore interface {
	List(ctx context.Context) ([]tracker.WeightEntry, error)
	// Upsert overwrites any existing entry for the date.
	Upsert(ctx context.Context, entry tracker.WeightEntry) (tracker.WeightEntry, error)
	Delete(ctx context.Context, date tracker.Date) error
}

type CalorieStore interface {
	List(ctx context.Context) ([]tracker.CalorieEntry, error)
	// Upsert merges the patch over any existing entry for the date and
	// returns the stored result.
	Upsert(ctx context.Context, patch tracker.CaloriePatch) (tracker.CalorieEntry, error)
	Delete(ctx context.Context, date tracker.Date) error
}

type WorkoutStore interface {
	List(ctx context.Context) ([]tracker.WorkoutEntry, error)
	Upsert(ctx context.Context, patch tracker.WorkoutPatch) (tracker.WorkoutEntry, error)
	Delete(ctx context.Context, date tracker.Date) error
}

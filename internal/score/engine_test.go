package score

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"fitarena/internal/game"
	"fitarena/internal/store"
	"fitarena/internal/tracker"
)

func ptr[T any](v T) *T { return &v }

func fixedClock(d tracker.Date) func() time.Time {
	return func() time.Time { return d.Time() }
}

func seedStore(t *testing.T) *store.Store {
	t.Helper()
	ctx := context.Background()
	s := store.NewMemory()

	for _, w := range []tracker.WeightEntry{
		{Date: date(14), Weight: 82.4},
		{Date: date(15), Weight: 82.1},
	} {
		if _, err := s.Weights.Upsert(ctx, w); err != nil {
			t.Fatalf("seed weights: %v", err)
		}
	}
	for _, day := range []int{14, 15} {
		if _, err := s.Calories.Upsert(ctx, tracker.CaloriePatch{
			Date:  date(day),
			Eaten: ptr(1900.0),
			Burnt: ptr(2500.0), // net -600
		}); err != nil {
			t.Fatalf("seed calories: %v", err)
		}
		if _, err := s.Workouts.Upsert(ctx, tracker.WorkoutPatch{
			Date:          date(day),
			Cardio:        ptr(true),
			CardioMinutes: ptr(60),
		}); err != nil {
			t.Fatalf("seed workouts: %v", err)
		}
	}
	return s
}

func TestEngineBreakdown(t *testing.T) {
	t.Parallel()

	engine := New(seedStore(t), game.Default(), WithClock(fixedClock(date(15))))
	got := engine.Breakdown(context.Background())

	// weight 2x50, calories 2x25, cardio-only 2x75, daily goals
	// (deficit 2x100 + cardio duration 2x60), streak of 2 at 2*25*1.1.
	want := Breakdown{
		TotalXP: 675,
		Level:   game.Default().Levels[1],
		Progress: game.Progress{
			Current:  175,
			Next:     500,
			Percent:  35,
			XPNeeded: 325,
		},
		Sources: []Source{
			{Source: sourceWeightLogging, XP: 100, Count: 2},
			{Source: sourceCalorieLogging, XP: 50, Count: 2},
			{Source: sourceCardioSessions, XP: 150, Count: 2},
			{Source: sourceDailyGoals, XP: 320},
			{Source: sourceStreakBonuses, XP: 55},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Breakdown() mismatch (-want +got):\n%s", diff)
	}
}

func TestEngineBreakdownIdempotent(t *testing.T) {
	t.Parallel()

	engine := New(seedStore(t), game.Default(), WithClock(fixedClock(date(15))))
	ctx := context.Background()

	first := engine.Breakdown(ctx)
	second := engine.Breakdown(ctx)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated Breakdown() differs (-first +second):\n%s", diff)
	}
}

func TestEngineEmptyStore(t *testing.T) {
	t.Parallel()

	cfg := game.Default()
	engine := New(store.NewMemory(), cfg, WithClock(fixedClock(date(15))))
	ctx := context.Background()

	breakdown := engine.Breakdown(ctx)
	if breakdown.TotalXP != 0 {
		t.Errorf("TotalXP = %d, want 0", breakdown.TotalXP)
	}
	if breakdown.Level.Level != 1 {
		t.Errorf("Level = %d, want 1", breakdown.Level.Level)
	}
	if len(breakdown.Sources) != 0 {
		t.Errorf("Sources = %v, want empty", breakdown.Sources)
	}

	arena := engine.Arena(ctx)
	if arena.Current.ID != 1 {
		t.Errorf("arena = stage %d, want 1", arena.Current.ID)
	}
	if arena.DeficitStreak != 0 {
		t.Errorf("deficit streak = %d, want 0", arena.DeficitStreak)
	}
}

func TestEngineArena(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := store.NewMemory()
	// Five-day streak, all rest days in deficit.
	for day := 11; day <= 15; day++ {
		if _, err := s.Calories.Upsert(ctx, tracker.CaloriePatch{
			Date:  date(day),
			Eaten: ptr(1400.0),
			Burnt: ptr(2000.0),
		}); err != nil {
			t.Fatalf("seed calories: %v", err)
		}
	}

	engine := New(s, game.Default(), WithClock(fixedClock(date(15))))
	got := engine.Arena(ctx)

	if got.DeficitStreak != 5 {
		t.Fatalf("DeficitStreak = %d, want 5", got.DeficitStreak)
	}
	if got.Current.RequiredDays != 3 {
		t.Errorf("Current.RequiredDays = %d, want 3", got.Current.RequiredDays)
	}
	if got.Next == nil || got.Next.RequiredDays != 7 {
		t.Fatalf("Next = %v, want stage requiring 7 days", got.Next)
	}
	if got.DaysUntilNext != 2 {
		t.Errorf("DaysUntilNext = %d, want 2", got.DaysUntilNext)
	}
}

type failingWeights struct{}

func (failingWeights) List(context.Context) ([]tracker.WeightEntry, error) {
	return nil, errors.New("collection offline")
}

func (failingWeights) Upsert(_ context.Context, e tracker.WeightEntry) (tracker.WeightEntry, error) {
	return e, nil
}

func (failingWeights) Delete(context.Context, tracker.Date) error { return nil }

// A collection whose retrieval fails contributes zero XP without taking
// down the rest of the evaluation.
func TestEngineFailSoft(t *testing.T) {
	t.Parallel()

	s := seedStore(t)
	s.Weights = failingWeights{}

	engine := New(s, game.Default(), WithClock(fixedClock(date(15))))
	got := engine.Breakdown(context.Background())

	if got.TotalXP != 575 { // 675 minus the 100 weight-logging XP
		t.Errorf("TotalXP = %d, want 575", got.TotalXP)
	}
	for _, src := range got.Sources {
		if src.Source == sourceWeightLogging {
			t.Errorf("breakdown contains %q despite store failure", sourceWeightLogging)
		}
	}
}

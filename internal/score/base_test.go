package score

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"fitarena/internal/game"
	"fitarena/internal/tracker"
)

func TestPartitionWorkouts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name                               string
		workouts                           []tracker.WorkoutEntry
		wantCardio, wantStrength, wantBoth int
	}{
		{
			name: "ten cardio days land in one bucket",
			workouts: func() []tracker.WorkoutEntry {
				var ws []tracker.WorkoutEntry
				for day := 1; day <= 10; day++ {
					ws = append(ws, cardioWorkout(day, 30))
				}
				return ws
			}(),
			wantCardio: 10,
		},
		{
			name: "both flags never double count",
			workouts: []tracker.WorkoutEntry{
				{Date: date(1), Cardio: true, Strength: true},
				{Date: date(2), Cardio: true},
				{Date: date(3), Strength: true},
			},
			wantCardio:   1,
			wantStrength: 1,
			wantBoth:     1,
		},
		{
			name: "rest-only entries count nowhere",
			workouts: []tracker.WorkoutEntry{
				{Date: date(1), RestDay: true},
				{Date: date(2)},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cardio, strength, both := partitionWorkouts(tt.workouts)
			if cardio != tt.wantCardio || strength != tt.wantStrength || both != tt.wantBoth {
				t.Errorf("partitionWorkouts() = (%d, %d, %d), want (%d, %d, %d)",
					cardio, strength, both, tt.wantCardio, tt.wantStrength, tt.wantBoth)
			}
		})
	}
}

func TestBaseSources(t *testing.T) {
	t.Parallel()

	cfg := game.Default()

	var workouts []tracker.WorkoutEntry
	for day := 1; day <= 10; day++ {
		workouts = append(workouts, cardioWorkout(day, 30))
	}

	got := baseSources(cfg,
		[]tracker.WeightEntry{{Date: date(1), Weight: 82}},
		nil,
		workouts,
	)

	// Zero-count lines (calorie logging, strength, dual) are omitted.
	want := []Source{
		{Source: sourceWeightLogging, XP: 50, Count: 1},
		{Source: sourceCardioSessions, XP: 750, Count: 10},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("baseSources() mismatch (-want +got):\n%s", diff)
	}
}

func TestBaseSourcesEmpty(t *testing.T) {
	t.Parallel()

	if got := baseSources(game.Default(), nil, nil, nil); len(got) != 0 {
		t.Errorf("baseSources() with no records = %v, want empty", got)
	}
}

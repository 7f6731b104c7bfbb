package score

import (
	"testing"
	"time"

	"fitarena/internal/game"
	"fitarena/internal/tracker"
)

func date(day int) tracker.Date {
	return tracker.NewDate(2026, time.February, day)
}

func calorieEntry(day int, eaten, burnt float64) tracker.CalorieEntry {
	return tracker.CalorieEntry{Date: date(day), Eaten: eaten, Burnt: burnt}
}

func cardioWorkout(day, minutes int) tracker.WorkoutEntry {
	return tracker.WorkoutEntry{Date: date(day), Cardio: true, CardioMinutes: minutes}
}

func TestDeficitStreak(t *testing.T) {
	t.Parallel()

	cfg := game.Default() // normal threshold 500, rest-day threshold 300
	today := date(15)

	tests := []struct {
		name     string
		calories []tracker.CalorieEntry
		workouts []tracker.WorkoutEntry
		want     int
	}{
		{
			name: "three days then gap",
			calories: []tracker.CalorieEntry{
				calorieEntry(15, 1400, 2000),
				calorieEntry(14, 1400, 2000),
				calorieEntry(13, 1400, 2000),
				// no entry for the 12th
				calorieEntry(11, 1400, 2000),
			},
			want: 3,
		},
		{
			name:     "no entry today ends walk immediately",
			calories: []tracker.CalorieEntry{calorieEntry(14, 1400, 2000)},
			want:     0,
		},
		{
			name: "active day held to normal threshold",
			calories: []tracker.CalorieEntry{
				calorieEntry(15, 1600, 2000), // net -400, below the 500 bar
			},
			workouts: []tracker.WorkoutEntry{cardioWorkout(15, 45)},
			want:     0,
		},
		{
			name: "rest day passes at reduced threshold",
			calories: []tracker.CalorieEntry{
				calorieEntry(15, 1600, 2000), // net -400 clears the 300 rest bar
			},
			want: 1,
		},
		{
			name: "explicit rest day flag wins over exercise flags",
			calories: []tracker.CalorieEntry{
				calorieEntry(15, 1600, 2000), // net -400
			},
			workouts: []tracker.WorkoutEntry{
				{Date: date(15), Cardio: true, RestDay: true},
			},
			want: 1,
		},
		{
			name: "failing threshold ends streak mid-walk",
			calories: []tracker.CalorieEntry{
				calorieEntry(15, 1400, 2000),
				calorieEntry(14, 2400, 2000), // surplus
				calorieEntry(13, 1400, 2000),
			},
			want: 1,
		},
		{
			name: "empty collections",
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := deficitStreak(cfg, today, tt.calories, tt.workouts)
			if got != tt.want {
				t.Errorf("deficitStreak() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestStreakBonus(t *testing.T) {
	t.Parallel()

	cfg := game.Default().Streak

	tests := []struct {
		name   string
		streak int
		want   int
	}{
		{name: "zero streak earns nothing", streak: 0, want: 0},
		{name: "single day no growth", streak: 1, want: 25},
		{name: "first milestone", streak: 3, want: 190},   // 3*25*1.2 + 100
		{name: "two milestones", streak: 7, want: 480},    // 7*25*1.6 + 200
		{name: "multiplier capped", streak: 15, want: 1050}, // 15*25*2.0 + 300
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := streakBonus(cfg, tt.streak); got != tt.want {
				t.Errorf("streakBonus(%d) = %d, want %d", tt.streak, got, tt.want)
			}
		})
	}
}

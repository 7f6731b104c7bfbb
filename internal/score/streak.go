package score

import (
	"math"

	"fitarena/internal/game"
	"fitarena/internal/tracker"
)

// deficitStreak counts consecutive days meeting the deficit threshold,
// walking backward from today one calendar day at a time. A missing
// calorie entry ends the walk; no gaps are allowed. Rest days (per the
// workout entry at that date, absent meaning rest) use the reduced
// rest-day threshold instead of the normal one.
//
// Both the streak bonus and arena resolution consume this walk, so they
// stay consistent by construction.
func deficitStreak(cfg game.Config, today tracker.Date, calories []tracker.CalorieEntry, workouts []tracker.WorkoutEntry) int {
	caloriesByDate := make(map[tracker.Date]tracker.CalorieEntry, len(calories))
	for _, c := range calories {
		caloriesByDate[c.Date] = c
	}
	restByDate := make(map[tracker.Date]bool, len(workouts))
	for i := range workouts {
		restByDate[workouts[i].Date] = tracker.IsRestDay(&workouts[i])
	}

	normalThreshold := cfg.DeficitTarget()
	restThreshold := cfg.RestDay.DeficitThreshold

	streak := 0
	for date := today; ; date = date.Prev() {
		entry, ok := caloriesByDate[date]
		if !ok {
			break
		}

		rest, logged := restByDate[date]
		if !logged {
			rest = true
		}

		threshold := normalThreshold
		if rest {
			threshold = restThreshold
		}

		if entry.Net() > -threshold {
			break
		}
		streak++
	}
	return streak
}

// streakBonus converts a streak length into XP: base bonus per day scaled
// by a multiplier that grows with the streak up to a cap, plus a flat bonus
// for every milestone already passed. A zero streak earns nothing.
func streakBonus(cfg game.StreakConfig, streak int) int {
	if streak <= 0 {
		return 0
	}

	multiplier := min(1+float64(streak-1)*(cfg.Multiplier-1), cfg.MaxMultiplier)
	bonus := float64(streak) * float64(cfg.BaseBonus) * multiplier

	for _, milestone := range cfg.MilestoneDays {
		if streak >= milestone {
			bonus += float64(cfg.MilestoneBonus)
		}
	}

	return int(math.Round(bonus))
}

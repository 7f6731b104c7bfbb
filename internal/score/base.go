package score

import (
	"fitarena/internal/game"
	"fitarena/internal/tracker"
)

// baseSources awards logging XP: entry count times the configured base
// reward per collection. Zero-value lines are omitted from the breakdown.
func baseSources(cfg game.Config, weights []tracker.WeightEntry, calories []tracker.CalorieEntry, workouts []tracker.WorkoutEntry) []Source {
	var sources []Source

	appendSource := func(label string, count, baseXP int) {
		if xp := count * baseXP; xp > 0 {
			sources = append(sources, Source{Source: label, XP: xp, Count: count})
		}
	}

	appendSource(sourceWeightLogging, len(weights), cfg.BaseXP(game.ActionWeightLog))
	appendSource(sourceCalorieLogging, len(calories), cfg.BaseXP(game.ActionCalorieLog))

	cardioOnly, strengthOnly, both := partitionWorkouts(workouts)
	appendSource(sourceCardioSessions, cardioOnly, cfg.BaseXP(game.ActionWorkoutCardio))
	appendSource(sourceStrength, strengthOnly, cfg.BaseXP(game.ActionWorkoutStrength))
	appendSource(sourceDualWorkouts, both, cfg.BaseXP(game.ActionWorkoutBoth))

	return sources
}

// partitionWorkouts classifies each entry into exactly one bucket by its
// own flags; a date never lands in two buckets.
func partitionWorkouts(workouts []tracker.WorkoutEntry) (cardioOnly, strengthOnly, both int) {
	for _, w := range workouts {
		switch {
		case w.Cardio && w.Strength:
			both++
		case w.Cardio:
			cardioOnly++
		case w.Strength:
			strengthOnly++
		}
	}
	return cardioOnly, strengthOnly, both
}

package score

import (
	"fitarena/internal/game"
	"fitarena/internal/tracker"
)

// dailyGoalsXP evaluates every date independently and sums the rewards of
// all goals met on it. Deficit and burn are separate checks on the same
// calorie entry, so one date can collect both.
func dailyGoalsXP(cfg game.Config, calories []tracker.CalorieEntry, workouts []tracker.WorkoutEntry) int {
	total := 0

	deficitGoal, hasDeficitGoal := cfg.Goal(game.GoalCalorieDeficit)
	burnGoal, hasBurnGoal := cfg.Goal(game.GoalCalorieBurn)

	for _, c := range calories {
		if hasDeficitGoal && deficitMet(deficitGoal.Target, c.Net()) {
			total += deficitGoal.XPReward
		}
		if hasBurnGoal && burnMet(burnGoal.Target, c.Burnt) {
			total += burnGoal.XPReward
		}
	}

	cardioGoal, hasCardioGoal := cfg.Goal(game.GoalCardio)
	strengthGoal, hasStrengthGoal := cfg.Goal(game.GoalStrength)

	for _, w := range workouts {
		if hasCardioGoal && cardioMet(cardioGoal.Target, w.CardioMinutes) {
			total += cardioGoal.XPReward
		}
		if hasStrengthGoal && strengthMet(strengthGoal.Target, w) {
			total += strengthGoal.XPReward
		}
	}

	return total
}

func deficitMet(target game.Target, net float64) bool {
	if target.IsCompletion() {
		return net < 0
	}
	threshold, _ := target.Numeric()
	return net <= -threshold
}

func burnMet(target game.Target, burnt float64) bool {
	if target.IsCompletion() {
		return burnt > 0
	}
	threshold, _ := target.Numeric()
	return burnt >= threshold
}

func cardioMet(target game.Target, minutes int) bool {
	if target.IsCompletion() {
		return minutes > 0
	}
	threshold, _ := target.Numeric()
	return float64(minutes) >= threshold
}

// strengthMet checks the strength flag under a completion target (any
// duration counts) and minutes under a numeric one.
func strengthMet(target game.Target, w tracker.WorkoutEntry) bool {
	if target.IsCompletion() {
		return w.Strength
	}
	threshold, _ := target.Numeric()
	return float64(w.StrengthMinutes) >= threshold
}

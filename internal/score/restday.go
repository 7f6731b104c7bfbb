package score

import (
	"math"

	"fitarena/internal/game"
	"fitarena/internal/tracker"
)

// minWindowData is the fewest days with data a trailing window needs
// before it carries enough signal to be scored.
const minWindowData = 5

type restDayResult struct {
	XP             int
	QualifyingDays int
	PerfectWeeks   int
}

type windowKey struct {
	start, end tracker.Date
}

type workoutStatus struct {
	hasExercise  bool
	explicitRest bool
}

// restDayDiscipline rewards keeping a deficit on rest days within trailing
// windows of fixed length. Each distinct date present in either collection
// ends one window; windows are de-duplicated by their (start,end) identity
// so a span is never scored twice regardless of enumeration order.
//
// A window qualifies only when its deficit-kept rest days fall inside the
// configured band: too few shows no discipline, too many means not enough
// training. A qualifying window where every rest day kept the deficit is a
// perfect week and earns a flat extra.
func restDayDiscipline(cfg game.Config, calories []tracker.CalorieEntry, workouts []tracker.WorkoutEntry) restDayResult {
	if len(calories) == 0 {
		return restDayResult{}
	}

	rd := cfg.RestDay

	workoutsByDate := make(map[tracker.Date]workoutStatus, len(workouts))
	for _, w := range workouts {
		workoutsByDate[w.Date] = workoutStatus{
			hasExercise:  w.HasExercise(),
			explicitRest: w.RestDay,
		}
	}

	// Deficit status uses the normal threshold here; the reduced rest-day
	// threshold only applies to the streak walk.
	normalThreshold := cfg.DeficitTarget()
	deficitByDate := make(map[tracker.Date]bool, len(calories))
	for _, c := range calories {
		deficitByDate[c.Date] = c.Net() <= -normalThreshold
	}

	dateSet := make(map[tracker.Date]struct{}, len(calories)+len(workouts))
	for _, c := range calories {
		dateSet[c.Date] = struct{}{}
	}
	for _, w := range workouts {
		dateSet[w.Date] = struct{}{}
	}
	dates := make([]tracker.Date, 0, len(dateSet))
	for d := range dateSet {
		dates = append(dates, d)
	}
	tracker.SortDates(dates)

	var result restDayResult
	totalXP := 0.0
	scored := make(map[windowKey]struct{})

	for _, end := range dates {
		start := end.AddDays(-(rd.WindowDays - 1))
		key := windowKey{start: start, end: end}
		if _, done := scored[key]; done {
			continue
		}

		restDaysWithDeficit := 0
		exerciseDays := 0
		daysWithData := 0

		for date := start; !end.Before(date); date = date.AddDays(1) {
			status := workoutsByDate[date]
			deficit, hasCalorieData := deficitByDate[date]

			switch {
			case hasCalorieData:
				daysWithData++
				if status.hasExercise {
					exerciseDays++
				} else if deficit {
					restDaysWithDeficit++
				}
			case status.explicitRest:
				// An explicit rest-day log still counts as data even
				// without calorie numbers.
				daysWithData++
			}
		}

		if daysWithData < minWindowData {
			continue
		}
		if restDaysWithDeficit < rd.MinRestDays || restDaysWithDeficit > rd.MaxRestDays {
			continue
		}

		scored[key] = struct{}{}
		totalXP += float64(restDaysWithDeficit) * float64(rd.BaseBonus) * rd.Multiplier
		result.QualifyingDays += restDaysWithDeficit

		totalRestDays := daysWithData - exerciseDays
		if totalRestDays > 0 && restDaysWithDeficit == totalRestDays && totalRestDays <= rd.MaxRestDays {
			totalXP += float64(rd.PerfectWeekBonus)
			result.PerfectWeeks++
		}
	}

	result.XP = int(math.Round(totalXP))
	return result
}

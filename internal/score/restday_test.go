package score

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"fitarena/internal/game"
	"fitarena/internal/tracker"
)

// Seven consecutive days, five with cardio and two pure rest days, every
// day in deficit at the normal threshold. Windows ending on days 1-4 lack
// data; the windows ending on days 5, 6 and 7 all qualify, and each is a
// perfect week because every rest day inside kept the deficit.
func TestRestDayDisciplineQualifyingWeek(t *testing.T) {
	t.Parallel()

	cfg := game.Default() // window 7, band 1-2, per-day 50 * 1.5, perfect week 100

	var calories []tracker.CalorieEntry
	for day := 1; day <= 7; day++ {
		calories = append(calories, calorieEntry(day, 1400, 2000)) // net -600
	}
	workouts := []tracker.WorkoutEntry{
		cardioWorkout(1, 30),
		cardioWorkout(2, 30),
		cardioWorkout(3, 30),
		// day 4 rests
		cardioWorkout(5, 30),
		cardioWorkout(6, 30),
		// day 7 rests
	}

	got := restDayDiscipline(cfg, calories, workouts)

	// end day 5: 1 rest day  -> 75 + 100
	// end day 6: 1 rest day  -> 75 + 100
	// end day 7: 2 rest days -> 150 + 100
	want := restDayResult{XP: 600, QualifyingDays: 4, PerfectWeeks: 3}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("restDayDiscipline() mismatch (-want +got):\n%s", diff)
	}
}

func TestRestDayDisciplineTooManyRestDays(t *testing.T) {
	t.Parallel()

	cfg := game.Default()

	// Seven days of data but only two exercise days: five deficit rest
	// days blow past the max of the 1-2 band in every window, so nothing
	// qualifies.
	var calories []tracker.CalorieEntry
	for day := 1; day <= 7; day++ {
		calories = append(calories, calorieEntry(day, 1400, 2000))
	}
	workouts := []tracker.WorkoutEntry{
		cardioWorkout(1, 30),
		cardioWorkout(2, 30),
	}

	got := restDayDiscipline(cfg, calories, workouts)
	if got.XP != 0 || got.QualifyingDays != 0 || got.PerfectWeeks != 0 {
		t.Errorf("restDayDiscipline() = %+v, want zero result", got)
	}
}

func TestRestDayDisciplineInsufficientData(t *testing.T) {
	t.Parallel()

	cfg := game.Default()

	// Only four days of calorie data: every window stays under the
	// five-day signal floor.
	var calories []tracker.CalorieEntry
	for day := 1; day <= 4; day++ {
		calories = append(calories, calorieEntry(day, 1400, 2000))
	}

	got := restDayDiscipline(cfg, calories, nil)
	if got.XP != 0 {
		t.Errorf("restDayDiscipline() XP = %d, want 0", got.XP)
	}
}

func TestRestDayDisciplineExplicitRestWithoutCalorieData(t *testing.T) {
	t.Parallel()

	cfg := game.Default()

	// Four days of calorie data plus an explicitly flagged rest day with
	// no calorie entry: the flag still counts toward daysWithData, pushing
	// the window over the floor.
	calories := []tracker.CalorieEntry{
		calorieEntry(1, 1400, 2000),
		calorieEntry(2, 1400, 2000),
		calorieEntry(3, 1400, 2000),
		calorieEntry(5, 1400, 2000),
	}
	workouts := []tracker.WorkoutEntry{
		cardioWorkout(1, 30),
		cardioWorkout(2, 30),
		cardioWorkout(3, 30),
		{Date: date(4), RestDay: true},
	}

	got := restDayDiscipline(cfg, calories, workouts)
	if got.XP == 0 {
		t.Errorf("restDayDiscipline() = %+v, want a qualifying window", got)
	}
}

func TestRestDayDisciplineNoCalorieEntries(t *testing.T) {
	t.Parallel()

	got := restDayDiscipline(game.Default(), nil, []tracker.WorkoutEntry{cardioWorkout(1, 30)})
	want := restDayResult{}
	if got != want {
		t.Errorf("restDayDiscipline() = %+v, want zero result", got)
	}
}

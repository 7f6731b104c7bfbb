package game

import (
	"fmt"

	go_json "github.com/goccy/go-json"
)

// Action identifies an XP-earning activity in the reward table.
type Action string

const (
	ActionWeightLog            Action = "weight_log"
	ActionCalorieLog           Action = "calorie_log"
	ActionWorkoutCardio        Action = "workout_cardio"
	ActionWorkoutStrength      Action = "workout_strength"
	ActionWorkoutBoth          Action = "workout_both"
	ActionCalorieDeficitGoal   Action = "calorie_deficit_goal"
	ActionCalorieBurnGoal      Action = "calorie_burn_goal"
	ActionCardioDurationGoal   Action = "cardio_duration_goal"
	ActionStrengthDurationGoal Action = "strength_duration_goal"
	ActionStreakBonus          Action = "streak_bonus"
)

type XPReward struct {
	Action      Action  `json:"action"`
	Description string  `json:"description"`
	BaseXP      int     `json:"baseXP"`
	Multiplier  float64 `json:"multiplier,omitempty"`
}

type LevelThreshold struct {
	Level       int    `json:"level"`
	XPRequired  int    `json:"xpRequired"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

type ArenaStage struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	RequiredDays  int    `json:"requiredDays"`
	Color         string `json:"color"`
	Icon          string `json:"icon"`
	UnlockMessage string `json:"unlockMessage"`
}

type GoalType string

const (
	GoalCalorieDeficit GoalType = "calorie_deficit"
	GoalCalorieBurn    GoalType = "calorie_burn"
	GoalCardio         GoalType = "cardio"
	GoalStrength       GoalType = "strength"
	GoalWeightLog      GoalType = "weight_log"
)

// Target is either a numeric threshold or "any amount counts" completion.
type Target struct {
	value      float64
	completion bool
}

func NumericTarget(v float64) Target {
	return Target{value: v}
}

func CompletionTarget() Target {
	return Target{completion: true}
}

// Numeric returns the threshold and whether the target is numeric.
func (t Target) Numeric() (float64, bool) {
	return t.value, !t.completion
}

func (t Target) IsCompletion() bool {
	return t.completion
}

// MarshalJSON keeps the legacy wire shape of the goal tables: a bare number
// for numeric targets, a bare boolean for completion targets.
func (t Target) MarshalJSON() ([]byte, error) {
	if t.completion {
		return []byte("true"), nil
	}
	return go_json.Marshal(t.value)
}

func (t *Target) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case "true":
		*t = CompletionTarget()
		return nil
	case "false":
		*t = Target{}
		return nil
	}
	var v float64
	if err := go_json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("invalid goal target %s: %w", data, err)
	}
	*t = NumericTarget(v)
	return nil
}

type DailyGoal struct {
	Type        GoalType `json:"type"`
	Target      Target   `json:"target"`
	XPReward    int      `json:"xpReward"`
	Description string   `json:"description"`
}

type StreakConfig struct {
	BaseBonus      int     `json:"baseBonus"`
	Multiplier     float64 `json:"multiplier"`
	MaxMultiplier  float64 `json:"maxMultiplier"`
	MilestoneDays  []int   `json:"milestoneDays"`
	MilestoneBonus int     `json:"milestoneBonus"`
}

type RestDayConfig struct {
	WindowDays       int     `json:"rollingWindowDays"`
	MinRestDays      int     `json:"minRestDays"`
	MaxRestDays      int     `json:"maxRestDays"`
	DeficitThreshold float64 `json:"restDayDeficitThreshold"`
	BaseBonus        int     `json:"baseBonus"`
	Multiplier       float64 `json:"multiplier"`
	PerfectWeekBonus int     `json:"perfectWeekBonus"`
}

// Config holds every tuning table the scoring engine reads. It is built once
// at startup and passed by value; nothing mutates it afterwards, so one
// Config may serve concurrent evaluations.
type Config struct {
	Rewards []XPReward
	Levels  []LevelThreshold
	Arenas  []ArenaStage
	Goals   []DailyGoal
	Streak  StreakConfig
	RestDay RestDayConfig
}

// BaseXP resolves the reward table; unknown actions are worth nothing.
func (c Config) BaseXP(a Action) int {
	for _, r := range c.Rewards {
		if r.Action == a {
			return r.BaseXP
		}
	}
	return 0
}

func (c Config) Goal(t GoalType) (DailyGoal, bool) {
	for _, g := range c.Goals {
		if g.Type == t {
			return g, true
		}
	}
	return DailyGoal{}, false
}

// fallbackDeficitTarget mirrors the stock calorie_deficit goal and is used
// when the goal table carries no numeric deficit target.
const fallbackDeficitTarget = 500

// DeficitTarget is the normal-day deficit threshold (kcal below
// maintenance). The streak walk, the daily-goal evaluator, and the rest-day
// window analysis all resolve it through here so they cannot disagree.
func (c Config) DeficitTarget() float64 {
	goal, ok := c.Goal(GoalCalorieDeficit)
	if !ok {
		return fallbackDeficitTarget
	}
	if v, numeric := goal.Target.Numeric(); numeric {
		return v
	}
	return fallbackDeficitTarget
}

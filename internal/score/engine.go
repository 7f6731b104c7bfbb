// Package score turns the raw record collections into the gamification
// layer: XP totals with a per-source breakdown, level progression, the
// deficit-streak walk, and arena placement.
package score

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"fitarena/internal/game"
	"fitarena/internal/store"
	"fitarena/internal/tracker"
	"fitarena/internal/xslog"
)

// Engine evaluates the gamification rules over snapshots of the record
// store. It holds no state between calls and is safe for concurrent use.
type Engine struct {
	store *store.Store
	cfg   game.Config
	now   func() time.Time
}

type Option func(*Engine)

// WithClock fixes the engine's notion of "today". Tests use this to pin the
// streak walk.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

func New(s *store.Store, cfg game.Config, opts ...Option) *Engine {
	e := &Engine{store: s, cfg: cfg, now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Source is one line of the XP breakdown.
type Source struct {
	Source string `json:"source"`
	XP     int    `json:"xp"`
	Count  int    `json:"count"`
}

type Breakdown struct {
	TotalXP  int                 `json:"totalXP"`
	Level    game.LevelThreshold `json:"level"`
	Progress game.Progress       `json:"xpProgress"`
	Sources  []Source            `json:"breakdown"`
}

type ArenaInfo struct {
	Current       game.ArenaStage  `json:"current"`
	Next          *game.ArenaStage `json:"next"`
	DeficitStreak int              `json:"deficitStreak"`
	DaysUntilNext int              `json:"daysUntilNext"`
}

const (
	sourceWeightLogging  = "Weight Logging"
	sourceCalorieLogging = "Calorie Logging"
	sourceCardioSessions = "Cardio Sessions"
	sourceStrength       = "Strength Sessions"
	sourceDualWorkouts   = "Dual Workouts"
	sourceDailyGoals     = "Daily Goals"
	sourceStreakBonuses  = "Streak Bonuses"
	sourceRestDay        = "Rest Day Discipline"
)

// Breakdown computes total XP across every source. Evaluation is a pure
// function of the snapshots taken here; rerunning against an unchanged
// store yields identical output.
func (e *Engine) Breakdown(ctx context.Context) Breakdown {
	weights, calories, workouts := e.records(ctx)

	sources := make([]Source, 0, 8)
	total := 0

	for _, src := range baseSources(e.cfg, weights, calories, workouts) {
		sources = append(sources, src)
		total += src.XP
	}

	if goalsXP := dailyGoalsXP(e.cfg, calories, workouts); goalsXP > 0 {
		sources = append(sources, Source{Source: sourceDailyGoals, XP: goalsXP})
		total += goalsXP
	}

	streak := deficitStreak(e.cfg, e.today(), calories, workouts)
	if streakXP := streakBonus(e.cfg.Streak, streak); streakXP > 0 {
		sources = append(sources, Source{Source: sourceStreakBonuses, XP: streakXP})
		total += streakXP
	}

	if rd := restDayDiscipline(e.cfg, calories, workouts); rd.XP > 0 {
		sources = append(sources, Source{Source: sourceRestDay, XP: rd.XP, Count: rd.QualifyingDays})
		total += rd.XP
	}

	level := e.cfg.LevelFor(total)
	return Breakdown{
		TotalXP:  total,
		Level:    level,
		Progress: e.cfg.ProgressFor(total, level),
		Sources:  sources,
	}
}

// Arena resolves the deficit streak into arena placement.
func (e *Engine) Arena(ctx context.Context) ArenaInfo {
	_, calories, workouts := e.records(ctx)

	streak := deficitStreak(e.cfg, e.today(), calories, workouts)
	current := e.cfg.ArenaFor(streak)
	next := e.cfg.NextArena(current)

	daysUntilNext := 0
	if next != nil {
		daysUntilNext = max(0, next.RequiredDays-streak)
	}

	return ArenaInfo{
		Current:       current,
		Next:          next,
		DeficitStreak: streak,
		DaysUntilNext: daysUntilNext,
	}
}

func (e *Engine) today() tracker.Date {
	return tracker.Today(e.now)
}

// records snapshots all three collections concurrently. A collection whose
// retrieval fails degrades to empty rather than aborting the evaluation.
func (e *Engine) records(ctx context.Context) ([]tracker.WeightEntry, []tracker.CalorieEntry, []tracker.WorkoutEntry) {
	logger := xslog.FromContext(ctx)

	var (
		weights  []tracker.WeightEntry
		calories []tracker.CalorieEntry
		workouts []tracker.WorkoutEntry
	)

	var g errgroup.Group
	g.Go(func() error {
		entries, err := e.store.Weights.List(ctx)
		if err != nil {
			logger.WarnContext(ctx, "collection unavailable, scoring without it",
				xslog.Collection("weights"), xslog.Error(err))
			return nil
		}
		weights = entries
		return nil
	})
	g.Go(func() error {
		entries, err := e.store.Calories.List(ctx)
		if err != nil {
			logger.WarnContext(ctx, "collection unavailable, scoring without it",
				xslog.Collection("calories"), xslog.Error(err))
			return nil
		}
		calories = entries
		return nil
	})
	g.Go(func() error {
		entries, err := e.store.Workouts.List(ctx)
		if err != nil {
			logger.WarnContext(ctx, "collection unavailable, scoring without it",
				xslog.Collection("workouts"), xslog.Error(err))
			return nil
		}
		workouts = entries
		return nil
	})
	_ = g.Wait()

	return weights, calories, workouts
}

package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"fitarena/internal/store"
	"fitarena/internal/tracker"
)

const schema = `
CREATE TABLE IF NOT EXISTS weight_entries (
    date DATE PRIMARY KEY,
    weight DOUBLE PRECISION NOT NULL
);

CREATE TABLE IF NOT EXISTS calorie_entries (
    date DATE PRIMARY KEY,
    calories_eaten DOUBLE PRECISION NOT NULL DEFAULT 0,
    calories_burnt DOUBLE PRECISION NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS workout_entries (
    date DATE PRIMARY KEY,
    cardio BOOLEAN NOT NULL DEFAULT FALSE,
    strength BOOLEAN NOT NULL DEFAULT FALSE,
    rest_day BOOLEAN NOT NULL DEFAULT FALSE,
    cardio_minutes INTEGER NOT NULL DEFAULT 0,
    strength_minutes INTEGER NOT NULL DEFAULT 0,
    notes TEXT NOT NULL DEFAULT ''
);
`

// Open connects to the given database and ensures the schema exists.
func Open(ctx context.Context, url string) (*store.Store, *pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, nil, fmt.Errorf("connect: %w", err)
	}

	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("apply schema: %w", err)
	}

	return &store.Store{
		Weights:  &weightStore{pool: pool},
		Calories: &calorieStore{pool: pool},
		Workouts: &workoutStore{pool: pool},
	}, pool, nil
}

type weightStore struct {
	pool *pgxpool.Pool
}

func (s *weightStore) List(ctx context.Context) ([]tracker.WeightEntry, error) {
	rows, err := s.pool.Query(ctx, `SELECT date::text, weight FROM weight_entries`)
	if err != nil {
		return nil, fmt.Errorf("list weights: %w", err)
	}
	defer rows.Close()

	var entries []tracker.WeightEntry
	for rows.Next() {
		var dateStr string
		var entry tracker.WeightEntry
		if err := rows.Scan(&dateStr, &entry.Weight); err != nil {
			return nil, fmt.Errorf("scan weight row: %w", err)
		}
		entry.Date, err = tracker.ParseDate(dateStr)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate weight rows: %w", err)
	}
	return entries, nil
}

func (s *weightStore) Upsert(ctx context.Context, entry tracker.WeightEntry) (tracker.WeightEntry, error) {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO weight_entries (date, weight) VALUES ($1, $2)
		ON CONFLICT (date) DO UPDATE SET weight = EXCLUDED.weight`,
		entry.Date.String(), entry.Weight)
	if err != nil {
		return tracker.WeightEntry{}, fmt.Errorf("upsert weight: %w", err)
	}
	return entry, nil
}

func (s *weightStore) Delete(ctx context.Context, date tracker.Date) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM weight_entries WHERE date = $1`, date.String())
	if err != nil {
		return fmt.Errorf("delete weight: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

type calorieStore struct {
	pool *pgxpool.Pool
}

func (s *calorieStore) List(ctx context.Context) ([]tracker.CalorieEntry, error) {
	rows, err := s.pool.Query(ctx, `SELECT date::text, calories_eaten, calories_burnt FROM calorie_entries`)
	if err != nil {
		return nil, fmt.Errorf("list calories: %w", err)
	}
	defer rows.Close()

	var entries []tracker.CalorieEntry
	for rows.Next() {
		var dateStr string
		var entry tracker.CalorieEntry
		if err := rows.Scan(&dateStr, &entry.Eaten, &entry.Burnt); err != nil {
			return nil, fmt.Errorf("scan calorie row: %w", err)
		}
		entry.Date, err = tracker.ParseDate(dateStr)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate calorie rows: %w", err)
	}
	return entries, nil
}

func (s *calorieStore) Upsert(ctx context.Context, patch tracker.CaloriePatch) (tracker.CalorieEntry, error) {
	row := s.pool.QueryRow(ctx, `
		INSERT INTO calorie_entries (date, calories_eaten, calories_burnt)
		VALUES ($1, COALESCE($2, 0), COALESCE($3, 0))
		ON CONFLICT (date) DO UPDATE SET
			calories_eaten = COALESCE($2, calorie_entries.calories_eaten),
			calories_burnt = COALESCE($3, calorie_entries.calories_burnt)
		RETURNING calories_eaten, calories_burnt`,
		patch.Date.String(), patch.Eaten, patch.Burnt)

	entry := tracker.CalorieEntry{Date: patch.Date}
	if err := row.Scan(&entry.Eaten, &entry.Burnt); err != nil {
		return tracker.CalorieEntry{}, fmt.Errorf("upsert calories: %w", err)
	}
	return entry, nil
}

func (s *calorieStore) Delete(ctx context.Context, date tracker.Date) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM calorie_entries WHERE date = $1`, date.String())
	if err != nil {
		return fmt.Errorf("delete calories: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

type workoutStore struct {
	pool *pgxpool.Pool
}

func (s *workoutStore) List(ctx context.Context) ([]tracker.WorkoutEntry, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT date::text, cardio, strength, rest_day, cardio_minutes, strength_minutes, notes
		FROM workout_entries`)
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}
	defer rows.Close()

	var entries []tracker.WorkoutEntry
	for rows.Next() {
		var dateStr string
		var entry tracker.WorkoutEntry
		if err := rows.Scan(&dateStr, &entry.Cardio, &entry.Strength, &entry.RestDay,
			&entry.CardioMinutes, &entry.StrengthMinutes, &entry.Notes); err != nil {
			return nil, fmt.Errorf("scan workout row: %w", err)
		}
		entry.Date, err = tracker.ParseDate(dateStr)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate workout rows: %w", err)
	}
	return entries, nil
}

func (s *workoutStore) Upsert(ctx context.Context, patch tracker.WorkoutPatch) (tracker.WorkoutEntry, error) {
	row := s.pool.QueryRow(ctx, `
		INSERT INTO workout_entries (date, cardio, strength, rest_day, cardio_minutes, strength_minutes, notes)
		VALUES ($1, COALESCE($2, FALSE), COALESCE($3, FALSE), COALESCE($4, FALSE), COALESCE($5, 0), COALESCE($6, 0), COALESCE($7, ''))
		ON CONFLICT (date) DO UPDATE SET
			cardio = COALESCE($2, workout_entries.cardio),
			strength = COALESCE($3, workout_entries.strength),
			rest_day = COALESCE($4, workout_entries.rest_day),
			cardio_minutes = COALESCE($5, workout_entries.cardio_minutes),
			strength_minutes = COALESCE($6, workout_entries.strength_minutes),
			notes = COALESCE($7, workout_entries.notes)
		RETURNING cardio, strength, rest_day, cardio_minutes, strength_minutes, notes`,
		patch.Date.String(), patch.Cardio, patch.Strength, patch.RestDay,
		patch.CardioMinutes, patch.StrengthMinutes, patch.Notes)

	entry := tracker.WorkoutEntry{Date: patch.Date}
	if err := row.Scan(&entry.Cardio, &entry.Strength, &entry.RestDay,
		&entry.CardioMinutes, &entry.StrengthMinutes, &entry.Notes); err != nil {
		return tracker.WorkoutEntry{}, fmt.Errorf("upsert workout: %w", err)
	}
	return entry, nil
}

func (s *workoutStore) Delete(ctx context.Context, date tracker.Date) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM workout_entries WHERE date = $1`, date.String())
	if err != nil {
		return fmt.Errorf("delete workout: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"fitarena/internal/store"
	"fitarena/internal/tracker"
)

// Open opens (creating if necessary) the tracker database at path and
// applies pending migrations.
func Open(ctx context.Context, path string) (*store.Store, *sql.DB, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := Migrate(ctx, db); err != nil {
		db.Close()
		return nil, nil, err
	}

	return &store.Store{
		Weights:  &weightStore{db: db},
		Calories: &calorieStore{db: db},
		Workouts: &workoutStore{db: db},
	}, db, nil
}

type weightStore struct {
	db *sql.DB
}

func (s *weightStore) List(ctx context.Context) ([]tracker.WeightEntry, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT date, weight FROM weight_entries`)
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
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO weight_entries (date, weight) VALUES (?1, ?2)
		ON CONFLICT(date) DO UPDATE SET weight = ?2`,
		entry.Date.String(), entry.Weight)
	if err != nil {
		return tracker.WeightEntry{}, fmt.Errorf("upsert weight: %w", err)
	}
	return entry, nil
}

func (s *weightStore) Delete(ctx context.Context, date tracker.Date) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM weight_entries WHERE date = ?1`, date.String())
	if err != nil {
		return fmt.Errorf("delete weight: %w", err)
	}
	return deleted(res)
}

type calorieStore struct {
	db *sql.DB
}

func (s *calorieStore) List(ctx context.Context) ([]tracker.CalorieEntry, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT date, calories_eaten, calories_burnt FROM calorie_entries`)
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

// Upsert merges in SQL: NULL patch fields keep the stored column value, so
// a partial update for an existing date never clobbers the other field.
func (s *calorieStore) Upsert(ctx context.Context, patch tracker.CaloriePatch) (tracker.CalorieEntry, error) {
	row := s.db.QueryRowContext(ctx, `
		INSERT INTO calorie_entries (date, calories_eaten, calories_burnt)
		VALUES (?1, COALESCE(?2, 0), COALESCE(?3, 0))
		ON CONFLICT(date) DO UPDATE SET
			calories_eaten = COALESCE(?2, calories_eaten),
			calories_burnt = COALESCE(?3, calories_burnt)
		RETURNING calories_eaten, calories_burnt`,
		patch.Date.String(), patch.Eaten, patch.Burnt)

	entry := tracker.CalorieEntry{Date: patch.Date}
	if err := row.Scan(&entry.Eaten, &entry.Burnt); err != nil {
		return tracker.CalorieEntry{}, fmt.Errorf("upsert calories: %w", err)
	}
	return entry, nil
}

func (s *calorieStore) Delete(ctx context.Context, date tracker.Date) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM calorie_entries WHERE date = ?1`, date.String())
	if err != nil {
		return fmt.Errorf("delete calories: %w", err)
	}
	return deleted(res)
}

type workoutStore struct {
	db *sql.DB
}

func (s *workoutStore) List(ctx context.Context) ([]tracker.WorkoutEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT date, cardio, strength, rest_day, cardio_minutes, strength_minutes, notes
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
	row := s.db.QueryRowContext(ctx, `
		INSERT INTO workout_entries (date, cardio, strength, rest_day, cardio_minutes, strength_minutes, notes)
		VALUES (?1, COALESCE(?2, 0), COALESCE(?3, 0), COALESCE(?4, 0), COALESCE(?5, 0), COALESCE(?6, 0), COALESCE(?7, ''))
		ON CONFLICT(date) DO UPDATE SET
			cardio = COALESCE(?2, cardio),
			strength = COALESCE(?3, strength),
			rest_day = COALESCE(?4, rest_day),
			cardio_minutes = COALESCE(?5, cardio_minutes),
			strength_minutes = COALESCE(?6, strength_minutes),
			notes = COALESCE(?7, notes)
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
	res, err := s.db.ExecContext(ctx, `DELETE FROM workout_entries WHERE date = ?1`, date.String())
	if err != nil {
		return fmt.Errorf("delete workout: %w", err)
	}
	return deleted(res)
}

// deleted maps a no-row delete onto store.ErrNotFound.
func deleted(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

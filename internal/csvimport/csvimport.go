// Package csvimport parses record exports so historical data can be
// backfilled in one shot.
//
// Expected columns:
//
//	weights:  date,weight
//	calories: date,caloriesEaten,caloriesBurnt
//	workouts: date,cardio,strength,restDay,cardioMinutes,strengthMinutes,notes
//
// A header row is skipped when the first column reads "date". Boolean
// columns accept true/false, 1/0 and yes/no.
package csvimport

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"fitarena/internal/tracker"
)

func newReader(r io.Reader) *csv.Reader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	return cr
}

func isHeader(record []string) bool {
	return len(record) > 0 && strings.EqualFold(strings.TrimSpace(record[0]), "date")
}

func parseDate(record []string, line int) (tracker.Date, error) {
	if len(record) == 0 {
		return tracker.Date{}, fmt.Errorf("line %d: empty record", line)
	}
	date, err := tracker.ParseDate(strings.TrimSpace(record[0]))
	if err != nil {
		return tracker.Date{}, fmt.Errorf("line %d: %w", line, err)
	}
	return date, nil
}

func parseFloat(field string, line int, name string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
	if err != nil {
		return 0, fmt.Errorf("line %d: invalid %s %q", line, name, field)
	}
	return v, nil
}

func parseInt(field string, line int, name string) (int, error) {
	field = strings.TrimSpace(field)
	if field == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(field)
	if err != nil {
		return 0, fmt.Errorf("line %d: invalid %s %q", line, name, field)
	}
	return v, nil
}

func parseBool(field string, line int, name string) (bool, error) {
	v, err := tracker.ParseBool(strings.TrimSpace(field))
	if err != nil {
		return false, fmt.Errorf("line %d: invalid %s %q", line, name, field)
	}
	return v, nil
}

func Weights(r io.Reader) ([]tracker.WeightEntry, error) {
	records, err := newReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}

	var entries []tracker.WeightEntry
	for i, record := range records {
		line := i + 1
		if i == 0 && isHeader(record) {
			continue
		}
		if len(record) < 2 {
			return nil, fmt.Errorf("line %d: want date,weight", line)
		}

		date, err := parseDate(record, line)
		if err != nil {
			return nil, err
		}
		weight, err := parseFloat(record[1], line, "weight")
		if err != nil {
			return nil, err
		}
		entries = append(entries, tracker.WeightEntry{Date: date, Weight: weight})
	}
	return entries, nil
}

// Calories returns patches rather than entries so blank columns keep
// whatever value is already stored for the date.
func Calories(r io.Reader) ([]tracker.CaloriePatch, error) {
	records, err := newReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}

	var patches []tracker.CaloriePatch
	for i, record := range records {
		line := i + 1
		if i == 0 && isHeader(record) {
			continue
		}
		if len(record) < 2 {
			return nil, fmt.Errorf("line %d: want date,caloriesEaten[,caloriesBurnt]", line)
		}

		date, err := parseDate(record, line)
		if err != nil {
			return nil, err
		}

		patch := tracker.CaloriePatch{Date: date}
		if strings.TrimSpace(record[1]) != "" {
			eaten, err := parseFloat(record[1], line, "caloriesEaten")
			if err != nil {
				return nil, err
			}
			patch.Eaten = &eaten
		}
		if len(record) > 2 && strings.TrimSpace(record[2]) != "" {
			burnt, err := parseFloat(record[2], line, "caloriesBurnt")
			if err != nil {
				return nil, err
			}
			patch.Burnt = &burnt
		}
		if patch.Eaten == nil && patch.Burnt == nil {
			return nil, fmt.Errorf("line %d: no calorie values", line)
		}
		patches = append(patches, patch)
	}
	return patches, nil
}

func Workouts(r io.Reader) ([]tracker.WorkoutEntry, error) {
	records, err := newReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}

	var entries []tracker.WorkoutEntry
	for i, record := range records {
		line := i + 1
		if i == 0 && isHeader(record) {
			continue
		}
		if len(record) < 3 {
			return nil, fmt.Errorf("line %d: want date,cardio,strength[,restDay,cardioMinutes,strengthMinutes,notes]", line)
		}

		date, err := parseDate(record, line)
		if err != nil {
			return nil, err
		}
		entry := tracker.WorkoutEntry{Date: date}

		if entry.Cardio, err = parseBool(record[1], line, "cardio"); err != nil {
			return nil, err
		}
		if entry.Strength, err = parseBool(record[2], line, "strength"); err != nil {
			return nil, err
		}
		if len(record) > 3 && strings.TrimSpace(record[3]) != "" {
			if entry.RestDay, err = parseBool(record[3], line, "restDay"); err != nil {
				return nil, err
			}
		}
		if len(record) > 4 {
			if entry.CardioMinutes, err = parseInt(record[4], line, "cardioMinutes"); err != nil {
				return nil, err
			}
		}
		if len(record) > 5 {
			if entry.StrengthMinutes, err = parseInt(record[5], line, "strengthMinutes"); err != nil {
				return nil, err
			}
		}
		if len(record) > 6 {
			entry.Notes = strings.TrimSpace(record[6])
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"fitarena/internal/client/api"
	"fitarena/internal/csvimport"
	"fitarena/internal/tracker"
)

func importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <weights|calories|workouts> <file.csv>",
		Short: "Backfill records from a CSV export",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, path := args[0], args[1]

			f, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", path, err)
			}
			defer func() { _ = f.Close() }()

			client, err := newClient()
			if err != nil {
				return err
			}

			var count int
			switch kind {
			case "weights":
				count, err = importWeights(cmd, client, f)
			case "calories":
				count, err = importCalories(cmd, client, f)
			case "workouts":
				count, err = importWorkouts(cmd, client, f)
			default:
				return fmt.Errorf("unknown collection %q (want weights, calories or workouts)", kind)
			}
			if err != nil {
				return err
			}

			cmd.Printf("imported %d %s record(s)\n", count, kind)
			return nil
		},
	}
	return cmd
}

func importWeights(cmd *cobra.Command, client *api.Client, f *os.File) (int, error) {
	entries, err := csvimport.Weights(f)
	if err != nil {
		return 0, err
	}
	for i, entry := range entries {
		if _, err := client.LogWeight(cmd.Context(), entry); err != nil {
			return i, fmt.Errorf("failed to import entry for %s: %w", entry.Date, err)
		}
	}
	return len(entries), nil
}

func importCalories(cmd *cobra.Command, client *api.Client, f *os.File) (int, error) {
	patches, err := csvimport.Calories(f)
	if err != nil {
		return 0, err
	}
	for i, patch := range patches {
		if _, err := client.LogCalories(cmd.Context(), patch); err != nil {
			return i, fmt.Errorf("failed to import entry for %s: %w", patch.Date, err)
		}
	}
	return len(patches), nil
}

func importWorkouts(cmd *cobra.Command, client *api.Client, f *os.File) (int, error) {
	entries, err := csvimport.Workouts(f)
	if err != nil {
		return 0, err
	}
	for i, entry := range entries {
		patch := tracker.WorkoutPatch{
			Date:            entry.Date,
			Cardio:          &entry.Cardio,
			Strength:        &entry.Strength,
			RestDay:         &entry.RestDay,
			CardioMinutes:   &entry.CardioMinutes,
			StrengthMinutes: &entry.StrengthMinutes,
		}
		if entry.Notes != "" {
			patch.Notes = &entry.Notes
		}
		if _, err := client.LogWorkout(cmd.Context(), patch); err != nil {
			return i, fmt.Errorf("failed to import entry for %s: %w", entry.Date, err)
		}
	}
	return len(entries), nil
}

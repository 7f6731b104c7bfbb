package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"fitarena/internal/tracker"
)

func logCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log",
		Short: "Record weight, calories or workouts",
	}
	cmd.AddCommand(logWeightCmd(), logCaloriesCmd(), logWorkoutCmd())
	return cmd
}

func dateFlag(cmd *cobra.Command) *string {
	return cmd.Flags().String("date", "", "entry date, YYYY-MM-DD (default today)")
}

func resolveDate(raw string) (tracker.Date, error) {
	if raw == "" {
		return tracker.Today(time.Now), nil
	}
	return tracker.ParseDate(raw)
}

func logWeightCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "weight <kg>",
		Short: "Record a weigh-in",
		Args:  cobra.ExactArgs(1),
	}
	date := dateFlag(cmd)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		weight, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("invalid weight %q", args[0])
		}
		d, err := resolveDate(*date)
		if err != nil {
			return err
		}

		client, err := newClient()
		if err != nil {
			return err
		}
		stored, err := client.LogWeight(cmd.Context(), tracker.WeightEntry{Date: d, Weight: weight})
		if err != nil {
			return err
		}

		cmd.Printf("logged %.1f kg on %s\n", stored.Weight, stored.Date)
		return nil
	}
	return cmd
}

func logCaloriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calories",
		Short: "Record calories eaten and burnt",
	}
	date := dateFlag(cmd)
	eaten := cmd.Flags().Float64("eaten", 0, "calories eaten")
	burnt := cmd.Flags().Float64("burnt", 0, "calories burnt")

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		d, err := resolveDate(*date)
		if err != nil {
			return err
		}

		patch := tracker.CaloriePatch{Date: d}
		if cmd.Flags().Changed("eaten") {
			patch.Eaten = eaten
		}
		if cmd.Flags().Changed("burnt") {
			patch.Burnt = burnt
		}
		if patch.Eaten == nil && patch.Burnt == nil {
			return fmt.Errorf("at least one of --eaten or --burnt is required")
		}

		client, err := newClient()
		if err != nil {
			return err
		}
		stored, err := client.LogCalories(cmd.Context(), patch)
		if err != nil {
			return err
		}

		cmd.Printf("logged %s: eaten %.0f, burnt %.0f (net %+.0f)\n",
			stored.Date, stored.Eaten, stored.Burnt, stored.Net())
		return nil
	}
	return cmd
}

func logWorkoutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "workout",
		Short: "Record a workout or a rest day",
	}
	date := dateFlag(cmd)
	cardio := cmd.Flags().Bool("cardio", false, "cardio session")
	strength := cmd.Flags().Bool("strength", false, "strength session")
	cardioMin := cmd.Flags().Int("cardio-minutes", 0, "cardio duration in minutes")
	strengthMin := cmd.Flags().Int("strength-minutes", 0, "strength duration in minutes")
	rest := cmd.Flags().Bool("rest", false, "mark the day as a rest day")
	notes := cmd.Flags().String("notes", "", "freeform notes")

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		d, err := resolveDate(*date)
		if err != nil {
			return err
		}

		patch := tracker.WorkoutPatch{Date: d}
		if cmd.Flags().Changed("cardio") {
			patch.Cardio = cardio
		}
		if cmd.Flags().Changed("strength") {
			patch.Strength = strength
		}
		if cmd.Flags().Changed("cardio-minutes") {
			patch.CardioMinutes = cardioMin
		}
		if cmd.Flags().Changed("strength-minutes") {
			patch.StrengthMinutes = strengthMin
		}
		if cmd.Flags().Changed("rest") {
			patch.RestDay = rest
		}
		if cmd.Flags().Changed("notes") {
			patch.Notes = notes
		}

		client, err := newClient()
		if err != nil {
			return err
		}
		stored, err := client.LogWorkout(cmd.Context(), patch)
		if err != nil {
			return err
		}

		switch {
		case stored.RestDay:
			cmd.Printf("logged rest day on %s\n", stored.Date)
		default:
			cmd.Printf("logged workout on %s (cardio %dm, strength %dm)\n",
				stored.Date, stored.CardioMinutes, stored.StrengthMinutes)
		}
		return nil
	}
	return cmd
}

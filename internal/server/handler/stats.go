package handler

import (
	"math"
	"net/http"
	"slices"

	"fitarena/internal/apperr"
	"fitarena/internal/tracker"
)

// statsResponse carries the aggregate fields the legacy backend exposed.
// Start/current weight are null until a weigh-in exists.
type statsResponse struct {
	TotalEntries     int      `json:"totalEntries"`
	StartWeight      *float64 `json:"startWeight"`
	CurrentWeight    *float64 `json:"currentWeight"`
	WeightLost       float64  `json:"weightLost"`
	AvgCaloriesEaten int      `json:"avgCaloriesEaten"`
	AvgCaloriesBurnt int      `json:"avgCaloriesBurnt"`
	TotalWorkouts    int      `json:"totalWorkouts"`
	CardioSessions   int      `json:"cardioSessions"`
	StrengthSessions int      `json:"strengthSessions"`
}

func (a *API) HandleStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	weights, err := a.store.Weights.List(ctx)
	if err != nil {
		apperr.WriteError(w, apperr.Internal("store_error", "failed to list weight entries", err))
		return
	}
	calories, err := a.store.Calories.List(ctx)
	if err != nil {
		apperr.WriteError(w, apperr.Internal("store_error", "failed to list calorie entries", err))
		return
	}
	workouts, err := a.store.Workouts.List(ctx)
	if err != nil {
		apperr.WriteError(w, apperr.Internal("store_error", "failed to list workout entries", err))
		return
	}

	stats := statsResponse{TotalEntries: len(weights)}

	if len(weights) > 0 {
		slices.SortFunc(weights, func(a, b tracker.WeightEntry) int {
			return a.Date.Compare(b.Date)
		})
		start := weights[0].Weight
		current := weights[len(weights)-1].Weight
		stats.StartWeight = &start
		stats.CurrentWeight = &current
		if len(weights) > 1 {
			stats.WeightLost = start - current
		}
	}

	if len(calories) > 0 {
		var eaten, burnt float64
		for _, c := range calories {
			eaten += c.Eaten
			burnt += c.Burnt
		}
		stats.AvgCaloriesEaten = int(math.Round(eaten / float64(len(calories))))
		stats.AvgCaloriesBurnt = int(math.Round(burnt / float64(len(calories))))
	}

	for _, entry := range workouts {
		if entry.Cardio {
			stats.CardioSessions++
		}
		if entry.Strength {
			stats.StrengthSessions++
		}
		if entry.Cardio || entry.Strength {
			stats.TotalWorkouts++
		}
	}

	respond(w, http.StatusOK, stats)
}

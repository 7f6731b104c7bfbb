package server

import (
	"log/slog"
	"net/http"

	"fitarena/internal/server/handler"
	"fitarena/internal/xhttp/middleware"
)

// New assembles the route table and the middleware stack.
func New(logger *slog.Logger, api *handler.API) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", handler.HandleHealth)

	mux.HandleFunc("GET /api/weight", api.HandleListWeights)
	mux.HandleFunc("POST /api/weight", api.HandleUpsertWeight)
	mux.HandleFunc("DELETE /api/weight/{date}", api.HandleDeleteWeight)

	mux.HandleFunc("GET /api/calories", api.HandleListCalories)
	mux.HandleFunc("POST /api/calories", api.HandleUpsertCalories)
	mux.HandleFunc("DELETE /api/calories/{date}", api.HandleDeleteCalories)

	mux.HandleFunc("GET /api/workouts", api.HandleListWorkouts)
	mux.HandleFunc("POST /api/workouts", api.HandleUpsertWorkout)
	mux.HandleFunc("DELETE /api/workouts/{date}", api.HandleDeleteWorkout)

	mux.HandleFunc("GET /api/stats", api.HandleStats)
	mux.HandleFunc("GET /api/score", api.HandleScore)
	mux.HandleFunc("GET /api/arena", api.HandleArena)

	return middleware.Chain(mux,
		middleware.Recovery,
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Logging,
		middleware.SecurityHeaders,
		middleware.Gzip,
	)
}

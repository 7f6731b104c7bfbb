package handler

import (
	"errors"
	"net/http"

	"fitarena/internal/apperr"
	"fitarena/internal/store"
	"fitarena/internal/tracker"
	"fitarena/internal/xhttp"
	"fitarena/internal/xslog"
)

func (a *API) HandleListWorkouts(w http.ResponseWriter, r *http.Request) {
	entries, err := a.store.Workouts.List(r.Context())
	if err != nil {
		apperr.WriteError(w, apperr.Internal("store_error", "failed to list workout entries", err))
		return
	}
	respond(w, http.StatusOK, entries)
}

// HandleUpsertWorkout merges the payload into any existing entry for the
// date, so cardio and strength sessions logged separately land on one
// record.
func (a *API) HandleUpsertWorkout(w http.ResponseWriter, r *http.Request) {
	var patch tracker.WorkoutPatch
	if aerr := decode(r, &patch); aerr != nil {
		apperr.WriteError(w, aerr)
		return
	}
	if patch.Date.IsZero() {
		apperr.WriteError(w, apperr.BadRequest("missing_date", "date is required"))
		return
	}

	stored, err := a.store.Workouts.Upsert(r.Context(), patch)
	if err != nil {
		apperr.WriteError(w, apperr.Internal("store_error", "failed to save workout entry", err))
		return
	}
	a.cache.Invalidate(r.Context())

	xslog.FromContext(r.Context()).InfoContext(r.Context(), "workout logged",
		xslog.Date(stored.Date.String()))
	respond(w, http.StatusOK, stored)
}

func (a *API) HandleDeleteWorkout(w http.ResponseWriter, r *http.Request) {
	date, aerr := pathDate(r)
	if aerr != nil {
		apperr.WriteError(w, aerr)
		return
	}

	if err := a.store.Workouts.Delete(r.Context(), date); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			apperr.WriteError(w, apperr.NotFound("not_found", "no workout entry for that date"))
			return
		}
		apperr.WriteError(w, apperr.Internal("store_error", "failed to delete workout entry", err))
		return
	}
	a.cache.Invalidate(r.Context())
	xhttp.WriteNoContent(w)
}

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

func (a *API) HandleListCalories(w http.ResponseWriter, r *http.Request) {
	entries, err := a.store.Calories.List(r.Context())
	if err != nil {
		apperr.WriteError(w, apperr.Internal("store_error", "failed to list calorie entries", err))
		return
	}
	respond(w, http.StatusOK, entries)
}

// HandleUpsertCalories merges the payload into any existing entry for the
// date. Fields absent from the body keep their stored value.
func (a *API) HandleUpsertCalories(w http.ResponseWriter, r *http.Request) {
	var patch tracker.CaloriePatch
	if aerr := decode(r, &patch); aerr != nil {
		apperr.WriteError(w, aerr)
		return
	}
	if patch.Date.IsZero() {
		apperr.WriteError(w, apperr.BadRequest("missing_date", "date is required"))
		return
	}
	if patch.Eaten == nil && patch.Burnt == nil {
		apperr.WriteError(w, apperr.BadRequest("empty_patch", "caloriesEaten or caloriesBurnt is required"))
		return
	}

	stored, err := a.store.Calories.Upsert(r.Context(), patch)
	if err != nil {
		apperr.WriteError(w, apperr.Internal("store_error", "failed to save calorie entry", err))
		return
	}
	a.cache.Invalidate(r.Context())

	xslog.FromContext(r.Context()).InfoContext(r.Context(), "calories logged",
		xslog.Date(stored.Date.String()))
	respond(w, http.StatusOK, stored)
}

func (a *API) HandleDeleteCalories(w http.ResponseWriter, r *http.Request) {
	date, aerr := pathDate(r)
	if aerr != nil {
		apperr.WriteError(w, aerr)
		return
	}

	if err := a.store.Calories.Delete(r.Context(), date); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			apperr.WriteError(w, apperr.NotFound("not_found", "no calorie entry for that date"))
			return
		}
		apperr.WriteError(w, apperr.Internal("store_error", "failed to delete calorie entry", err))
		return
	}
	a.cache.Invalidate(r.Context())
	xhttp.WriteNoContent(w)
}

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

func (a *API) HandleListWeights(w http.ResponseWriter, r *http.Request) {
	entries, err := a.store.Weights.List(r.Context())
	if err != nil {
		apperr.WriteError(w, apperr.Internal("store_error", "failed to list weight entries", err))
		return
	}
	respond(w, http.StatusOK, entries)
}

func (a *API) HandleUpsertWeight(w http.ResponseWriter, r *http.Request) {
	var entry tracker.WeightEntry
	if aerr := decode(r, &entry); aerr != nil {
		apperr.WriteError(w, aerr)
		return
	}
	if entry.Date.IsZero() {
		apperr.WriteError(w, apperr.BadRequest("missing_date", "date is required"))
		return
	}
	if entry.Weight <= 0 {
		apperr.WriteError(w, apperr.BadRequest("invalid_weight", "weight must be positive"))
		return
	}

	stored, err := a.store.Weights.Upsert(r.Context(), entry)
	if err != nil {
		apperr.WriteError(w, apperr.Internal("store_error", "failed to save weight entry", err))
		return
	}
	a.cache.Invalidate(r.Context())

	xslog.FromContext(r.Context()).InfoContext(r.Context(), "weight logged",
		xslog.Date(stored.Date.String()))
	respond(w, http.StatusOK, stored)
}

func (a *API) HandleDeleteWeight(w http.ResponseWriter, r *http.Request) {
	date, aerr := pathDate(r)
	if aerr != nil {
		apperr.WriteError(w, aerr)
		return
	}

	if err := a.store.Weights.Delete(r.Context(), date); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			apperr.WriteError(w, apperr.NotFound("not_found", "no weight entry for that date"))
			return
		}
		apperr.WriteError(w, apperr.Internal("store_error", "failed to delete weight entry", err))
		return
	}
	a.cache.Invalidate(r.Context())
	xhttp.WriteNoContent(w)
}

// Package handler exposes the record collections and the score engine
// over HTTP. Every payload is wrapped in a {success, data} envelope.
package handler

import (
	"net/http"

	go_json "github.com/goccy/go-json"

	"fitarena/internal/apperr"
	"fitarena/internal/cache"
	"fitarena/internal/score"
	"fitarena/internal/store"
	"fitarena/internal/tracker"
	"fitarena/internal/xhttp"
)

type API struct {
	store  *store.Store
	engine *score.Engine
	cache  cache.Scores
}

func NewAPI(s *store.Store, engine *score.Engine, scores cache.Scores) *API {
	return &API{store: s, engine: engine, cache: scores}
}

type envelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

func respond(w http.ResponseWriter, status int, data any) {
	xhttp.WriteJSON(w, status, envelope{Success: true, Data: data})
}

func decode(r *http.Request, dst any) *apperr.Error {
	if err := go_json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperr.BadRequest("invalid_body", "request body is not valid JSON")
	}
	return nil
}

func pathDate(r *http.Request) (tracker.Date, *apperr.Error) {
	raw := r.PathValue("date")
	date, err := tracker.ParseDate(raw)
	if err != nil {
		return tracker.Date{}, apperr.BadRequest("invalid_date", "date must be formatted YYYY-MM-DD")
	}
	return date, nil
}

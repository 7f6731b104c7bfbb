package handler

import (
	"net/http"

	"fitarena/internal/xslog"
)

func (a *API) HandleScore(w http.ResponseWriter, r *http.Request) {
	if cached, ok := a.cache.Get(r.Context()); ok {
		respond(w, http.StatusOK, cached)
		return
	}

	breakdown := a.engine.Breakdown(r.Context())
	a.cache.Set(r.Context(), breakdown)

	xslog.FromContext(r.Context()).DebugContext(r.Context(), "score computed",
		xslog.XP(breakdown.TotalXP))
	respond(w, http.StatusOK, breakdown)
}

func (a *API) HandleArena(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, a.engine.Arena(r.Context()))
}

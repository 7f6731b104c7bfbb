package handler

import (
	"net/http"

	"fitarena/internal/version"
)

func HandleHealth(w http.ResponseWriter, _ *http.Request) {
	respond(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": version.Get(),
	})
}

package apperr

import (
	"errors"
	"net/http"

	go_json "github.com/goccy/go-json"

	"fitarena/internal/xhttp"
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func WriteError(w http.ResponseWriter, err error) {
	var appErr *Error
	if !errors.As(err, &appErr) {
		appErr = Internal("internal_error", "an unexpected error occurred", err)
	}

	xhttp.SetHeaderContentTypeApplicationJSON(w)
	w.WriteHeader(appErr.StatusCode)
	_ = go_json.NewEncoder(w).Encode(errorResponse{
		Error:   appErr.Code,
		Message: appErr.Message,
	})
}

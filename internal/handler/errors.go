package handler

import (
	"encoding/json"
	"net/http"
)

// errorResponse is the error envelope for every non-200 the handlers write:
// {"error": {"code": "...", "message": "..."}}.
type errorResponse struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeError writes the error envelope with the given status. Messages are
// static strings chosen at the call site; internal error text never leaks
// into response bodies.
func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Error: errorDetail{Code: code, Message: message}})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

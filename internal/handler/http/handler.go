package handler

import (
	"encoding/json"
	"net/http"
)

// respondJSON writes data as JSON with status code
func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// respondError writes the {status:false, msg} error body
func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]any{
		"status": false,
		"msg":    msg,
	})
}

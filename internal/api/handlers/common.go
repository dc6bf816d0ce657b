package handlers

import (
	"encoding/json"
	"net/http"
)

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}

// withWarning attaches a non-empty warning to a response payload.
func withWarning(payload map[string]interface{}, warning string) map[string]interface{} {
	if warning != "" {
		payload["warning"] = warning
	}
	return payload
}

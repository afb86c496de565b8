package interfaces

import (
	"encoding/json"
	"net/http"
)

// respondJSON and respondError mirror the server's response helpers so
// handler tests exercise the same envelope the router installs.
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string, errs ...[]string) {
	response := map[string]interface{}{
		"status":  "error",
		"message": message,
		"code":    status,
	}
	if len(errs) > 0 {
		response["errors"] = errs[0]
	}
	respondJSON(w, status, response)
}

package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"wonderpay-server/src/services"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// respondError maps a service error onto an HTTP status: missing
// session is 401, submit-time validation is 400, anything remote is a
// bad gateway.
func respondError(w http.ResponseWriter, err error) {
	var e *services.Error
	if !errors.As(err, &e) {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	status := http.StatusBadGateway
	switch e.Kind {
	case services.KindSession:
		status = http.StatusUnauthorized
	case services.KindValidation:
		status = http.StatusBadRequest
	}
	http.Error(w, e.Message, status)
}

package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"wonderpay-server/src/models"
	"wonderpay-server/src/services"
)

func GetEntity(entity *services.EntityService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		details, err := entity.Get(r.Context())
		if err != nil {
			log.Printf("ERROR: Failed to fetch entity details: %v", err)
			respondError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, details)
	}
}

func UpdateEntity(entity *services.EntityService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.UpdateEntityRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode update entity request body: %v", err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		updated, err := entity.Update(r.Context(), req)
		if err != nil {
			log.Printf("ERROR: Failed to update entity settings: %v", err)
			respondError(w, err)
			return
		}

		log.Printf("INFO: Updated entity settings for %s", updated.ID)
		writeJSON(w, http.StatusOK, updated)
	}
}

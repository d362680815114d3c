package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"wonderpay-server/src/models"
	"wonderpay-server/src/monite"
	"wonderpay-server/src/services"
	"wonderpay-server/src/util"

	"github.com/go-chi/chi/v5"
)

func CreateCounterpart(counterparts *services.CounterpartsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.CreateCounterpartRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode create counterpart request body: %v", err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		if req.Type != "organization" && req.Type != "individual" {
			log.Printf("ERROR: Invalid counterpart type %q", req.Type)
			http.Error(w, "type must be organization or individual", http.StatusBadRequest)
			return
		}
		if req.Email != "" && !util.ValidateEmail(req.Email) {
			log.Printf("ERROR: Email validation failed for counterpart %q", req.Name)
			http.Error(w, "invalid email format", http.StatusBadRequest)
			return
		}

		counterpart, err := counterparts.Create(r.Context(), req)
		if err != nil {
			log.Printf("ERROR: Failed to create counterpart %q: %v", req.Name, err)
			respondError(w, err)
			return
		}

		log.Printf("INFO: Created counterpart %s", counterpart.ID)
		writeJSON(w, http.StatusCreated, counterpart)
	}
}

func ListCounterparts(counterparts *services.CounterpartsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := monite.CounterpartListParams{
			Type: r.URL.Query().Get("type"),
		}
		if limit := r.URL.Query().Get("limit"); limit != "" {
			params.Limit, _ = strconv.Atoi(limit)
		}
		if offset := r.URL.Query().Get("offset"); offset != "" {
			params.Offset, _ = strconv.Atoi(offset)
		}

		list, err := counterparts.List(r.Context(), params)
		if err != nil {
			log.Printf("ERROR: Failed to list counterparts: %v", err)
			respondError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, list)
	}
}

func GetCounterpart(counterparts *services.CounterpartsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		counterpartID := chi.URLParam(r, "counterpart_id")

		counterpart, err := counterparts.GetByID(r.Context(), counterpartID)
		if err != nil {
			log.Printf("ERROR: Failed to get counterpart %s: %v", counterpartID, err)
			respondError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, counterpart)
	}
}

func UpdateCounterpart(counterparts *services.CounterpartsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		counterpartID := chi.URLParam(r, "counterpart_id")

		var req models.UpdateCounterpartRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode update counterpart request body: %v", err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		counterpart, err := counterparts.Update(r.Context(), counterpartID, req)
		if err != nil {
			log.Printf("ERROR: Failed to update counterpart %s: %v", counterpartID, err)
			respondError(w, err)
			return
		}

		log.Printf("INFO: Updated counterpart %s", counterpart.ID)
		writeJSON(w, http.StatusOK, counterpart)
	}
}

func DeleteCounterpart(counterparts *services.CounterpartsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		counterpartID := chi.URLParam(r, "counterpart_id")

		removed, err := counterparts.Remove(r.Context(), counterpartID)
		if err != nil || !removed {
			log.Printf("ERROR: Failed to delete counterpart %s: %v", counterpartID, err)
			respondError(w, err)
			return
		}

		log.Printf("INFO: Deleted counterpart %s", counterpartID)
		writeJSON(w, http.StatusOK, map[string]string{"message": "contact removed"})
	}
}

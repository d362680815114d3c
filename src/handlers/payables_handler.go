package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"wonderpay-server/src/models"
	"wonderpay-server/src/monite"
	"wonderpay-server/src/services"

	"github.com/go-chi/chi/v5"
)

func CreatePayable(payables *services.PayablesService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.CreatePayableRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode create payable request body: %v", err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		if req.Amount <= 0 {
			log.Printf("ERROR: Invalid payable amount %v", req.Amount)
			http.Error(w, "amount must be positive", http.StatusBadRequest)
			return
		}

		payable, err := payables.Create(r.Context(), req)
		if err != nil {
			log.Printf("ERROR: Failed to create payable: %v", err)
			respondError(w, err)
			return
		}

		log.Printf("INFO: Created payable %s", payable.ID)
		writeJSON(w, http.StatusCreated, payable)
	}
}

func ListPayables(payables *services.PayablesService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := monite.PayableListParams{
			Status: r.URL.Query().Get("status"),
		}
		if limit := r.URL.Query().Get("limit"); limit != "" {
			params.Limit, _ = strconv.Atoi(limit)
		}
		if offset := r.URL.Query().Get("offset"); offset != "" {
			params.Offset, _ = strconv.Atoi(offset)
		}

		list, err := payables.List(r.Context(), params)
		if err != nil {
			log.Printf("ERROR: Failed to list payables: %v", err)
			respondError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, list)
	}
}

func GetPayable(payables *services.PayablesService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payableID := chi.URLParam(r, "payable_id")

		payable, err := payables.GetByID(r.Context(), payableID)
		if err != nil {
			log.Printf("ERROR: Failed to get payable %s: %v", payableID, err)
			respondError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, payable)
	}
}

func UpdatePayable(payables *services.PayablesService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payableID := chi.URLParam(r, "payable_id")

		var req models.UpdatePayableRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode update payable request body: %v", err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		payable, err := payables.Update(r.Context(), payableID, req)
		if err != nil {
			log.Printf("ERROR: Failed to update payable %s: %v", payableID, err)
			respondError(w, err)
			return
		}

		log.Printf("INFO: Updated payable %s", payable.ID)
		writeJSON(w, http.StatusOK, payable)
	}
}

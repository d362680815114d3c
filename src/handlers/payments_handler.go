package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"wonderpay-server/src/models"
	"wonderpay-server/src/services"

	"github.com/go-chi/chi/v5"
)

func SubmitPayment(payments *services.PaymentsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req services.SubmitPaymentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode submit payment request body: %v", err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		if req.Amount <= 0 {
			log.Printf("ERROR: Invalid payment amount %v", req.Amount)
			http.Error(w, "amount must be positive", http.StatusBadRequest)
			return
		}

		intent, err := payments.SubmitPayment(r.Context(), req)
		if err != nil {
			log.Printf("ERROR: Payment submission failed: %v", err)
			respondError(w, err)
			return
		}

		log.Printf("INFO: Processed payment intent %s (%v %s via %s)", intent.ID, intent.Amount, intent.Currency, intent.Method)
		writeJSON(w, http.StatusCreated, intent)
	}
}

func GetPaymentMethods(payments *services.PaymentsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		methods, err := payments.GetMethods(r.Context())
		if err != nil {
			log.Printf("ERROR: Failed to list payment methods: %v", err)
			respondError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, methods)
	}
}

func SchedulePayment(payments *services.PaymentsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		intentID := chi.URLParam(r, "intent_id")

		var req struct {
			ScheduledDate string `json:"scheduled_date"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode schedule payment request body: %v", err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		date, err := time.Parse(time.RFC3339, req.ScheduledDate)
		if err != nil {
			log.Printf("ERROR: Invalid scheduled_date %q: %v", req.ScheduledDate, err)
			http.Error(w, "scheduled_date must be RFC 3339", http.StatusBadRequest)
			return
		}

		scheduled, err := payments.SchedulePayment(r.Context(), intentID, date)
		if err != nil || !scheduled {
			log.Printf("ERROR: Failed to schedule payment intent %s: %v", intentID, err)
			respondError(w, err)
			return
		}

		log.Printf("INFO: Scheduled payment intent %s for %s", intentID, req.ScheduledDate)
		writeJSON(w, http.StatusOK, map[string]string{"message": "payment scheduled"})
	}
}

func CreateRecurringPayment(payments *services.PaymentsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.RecurringPaymentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode recurring payment request body: %v", err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		created, err := payments.CreateRecurringPayment(r.Context(), req)
		if err != nil || !created {
			log.Printf("ERROR: Failed to create recurring payment: %v", err)
			respondError(w, err)
			return
		}

		log.Printf("INFO: Created recurring %s payment (%v %s)", req.Frequency, req.Amount, req.Currency)
		writeJSON(w, http.StatusCreated, map[string]string{"message": "recurring payment created"})
	}
}

package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"wonderpay-server/src/models"
	"wonderpay-server/src/monite"
	"wonderpay-server/src/services"
)

func GetPaymentAnalytics(analytics *services.AnalyticsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := monite.PaymentAnalyticsParams{
			StartDate: r.URL.Query().Get("start_date"),
			EndDate:   r.URL.Query().Get("end_date"),
			Type:      r.URL.Query().Get("type"),
		}
		if params.StartDate == "" || params.EndDate == "" {
			http.Error(w, "start_date and end_date are required", http.StatusBadRequest)
			return
		}

		result, err := analytics.GetPaymentAnalytics(r.Context(), params)
		if err != nil {
			log.Printf("ERROR: Failed to fetch payment analytics: %v", err)
			respondError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}

func GetAuditTrail(analytics *services.AnalyticsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := monite.AuditTrailParams{
			EntityID:  r.URL.Query().Get("entity_id"),
			StartDate: r.URL.Query().Get("start_date"),
			EndDate:   r.URL.Query().Get("end_date"),
		}

		events, err := analytics.GetAuditTrail(r.Context(), params)
		if err != nil {
			log.Printf("ERROR: Failed to fetch audit trail: %v", err)
			respondError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, events)
	}
}

func CreateExport(analytics *services.AnalyticsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.CreateExportRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode create export request body: %v", err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		export, err := analytics.ExportData(r.Context(), req)
		if err != nil {
			log.Printf("ERROR: Failed to start %s export: %v", req.Type, err)
			respondError(w, err)
			return
		}

		log.Printf("INFO: Started %s export %s", export.Type, export.ID)
		writeJSON(w, http.StatusCreated, export)
	}
}

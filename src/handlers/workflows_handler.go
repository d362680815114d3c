package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"wonderpay-server/src/models"
	"wonderpay-server/src/services"

	"github.com/go-chi/chi/v5"
)

func CreateWorkflow(workflows *services.WorkflowsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Name  string                `json:"name"`
			Steps []models.WorkflowStep `json:"steps"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode create workflow request body: %v", err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		if req.Name == "" || len(req.Steps) == 0 {
			http.Error(w, "name and steps are required", http.StatusBadRequest)
			return
		}

		workflow, err := workflows.CreateApprovalWorkflow(r.Context(), req.Name, req.Steps)
		if err != nil {
			log.Printf("ERROR: Failed to create workflow %q: %v", req.Name, err)
			respondError(w, err)
			return
		}

		log.Printf("INFO: Created approval workflow %s", workflow.ID)
		writeJSON(w, http.StatusCreated, workflow)
	}
}

func ListWorkflows(workflows *services.WorkflowsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := workflows.List(r.Context())
		if err != nil {
			log.Printf("ERROR: Failed to list workflows: %v", err)
			respondError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, list)
	}
}

func UpdateWorkflowStatus(workflows *services.WorkflowsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		workflowID := chi.URLParam(r, "workflow_id")

		var req models.UpdateWorkflowStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode update workflow status request body: %v", err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		updated, err := workflows.UpdateStatus(r.Context(), workflowID, req.Status, req.Comment)
		if err != nil || !updated {
			log.Printf("ERROR: Failed to update workflow %s status: %v", workflowID, err)
			respondError(w, err)
			return
		}

		log.Printf("INFO: Workflow %s %s", workflowID, req.Status)
		writeJSON(w, http.StatusOK, map[string]string{"message": "workflow " + req.Status})
	}
}

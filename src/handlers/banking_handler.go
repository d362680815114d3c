package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"wonderpay-server/src/models"
	"wonderpay-server/src/services"
	"wonderpay-server/src/util"

	"github.com/go-chi/chi/v5"
)

func CreateBankAccount(banking *services.BankingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.CreateBankAccountRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode create bank account request body: %v", err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		if req.IBAN != "" && !util.ValidateIBAN(req.IBAN) {
			log.Printf("ERROR: IBAN validation failed for bank account %q", req.Name)
			http.Error(w, "invalid IBAN", http.StatusBadRequest)
			return
		}
		if req.BIC != "" && !util.ValidateBIC(req.BIC) {
			log.Printf("ERROR: BIC validation failed for bank account %q", req.Name)
			http.Error(w, "invalid BIC", http.StatusBadRequest)
			return
		}

		account, err := banking.Create(r.Context(), req)
		if err != nil {
			log.Printf("ERROR: Failed to create bank account %q: %v", req.Name, err)
			respondError(w, err)
			return
		}

		log.Printf("INFO: Created bank account %s", account.ID)
		writeJSON(w, http.StatusCreated, account)
	}
}

func ListBankAccounts(banking *services.BankingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accounts, err := banking.List(r.Context())
		if err != nil {
			log.Printf("ERROR: Failed to list bank accounts: %v", err)
			respondError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, accounts)
	}
}

func GetBankAccount(banking *services.BankingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID := chi.URLParam(r, "account_id")

		account, err := banking.GetByID(r.Context(), accountID)
		if err != nil {
			log.Printf("ERROR: Failed to get bank account %s: %v", accountID, err)
			respondError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, account)
	}
}

func DeleteBankAccount(banking *services.BankingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID := chi.URLParam(r, "account_id")

		removed, err := banking.Remove(r.Context(), accountID)
		if err != nil || !removed {
			log.Printf("ERROR: Failed to delete bank account %s: %v", accountID, err)
			respondError(w, err)
			return
		}

		log.Printf("INFO: Deleted bank account %s", accountID)
		writeJSON(w, http.StatusOK, map[string]string{"message": "bank account removed"})
	}
}

func VerifyBankAccount(payments *services.PaymentsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID := chi.URLParam(r, "account_id")

		verified, err := payments.VerifyBankAccount(r.Context(), accountID)
		if err != nil || !verified {
			log.Printf("ERROR: Failed to verify bank account %s: %v", accountID, err)
			respondError(w, err)
			return
		}

		log.Printf("INFO: Verified bank account %s", accountID)
		writeJSON(w, http.StatusOK, map[string]string{"message": "bank account verified"})
	}
}

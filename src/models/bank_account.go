package models

type BankAccount struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	IBAN     string `json:"iban"`
	BIC      string `json:"bic"`
	BankName string `json:"bank_name"`
	Currency string `json:"currency"`
	Status   string `json:"status"` // unverified | verified
}

type CreateBankAccountRequest struct {
	Name     string `json:"name"`
	IBAN     string `json:"iban"`
	BIC      string `json:"bic"`
	BankName string `json:"bank_name"`
	Currency string `json:"currency"`
}

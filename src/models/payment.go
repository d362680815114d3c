package models

type PaymentIntent struct {
	ID            string        `json:"id"`
	Amount        float64       `json:"amount"`
	Currency      string        `json:"currency"`
	Method        string        `json:"payment_method"` // ach | card | wire
	PayableID     string        `json:"payable_id,omitempty"`
	BankAccountID string        `json:"bank_account_id,omitempty"`
	Status        string        `json:"status"`
	PaymentTerms  *PaymentTerms `json:"payment_terms,omitempty"`
}

type PaymentTerms struct {
	Installments           int     `json:"installments"`
	Interval               string  `json:"interval"`
	FirstPaymentPercentage float64 `json:"first_payment_percentage"`
}

type PaymentMethod struct {
	ID     string `json:"id"`
	Type   string `json:"type"` // ach | card | wire
	Name   string `json:"name"`
	Status string `json:"status"` // active | inactive
}

type CreatePaymentIntentRequest struct {
	Amount        float64       `json:"amount"`
	Currency      string        `json:"currency"`
	Method        string        `json:"payment_method"`
	PayableID     string        `json:"payable_id,omitempty"`
	BankAccountID string        `json:"bank_account_id,omitempty"`
	PaymentTerms  *PaymentTerms `json:"payment_terms,omitempty"`
}

type RecurringPaymentRequest struct {
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
	Method    string  `json:"payment_method"` // ach | card
	Frequency string  `json:"frequency"`      // weekly | monthly | quarterly | yearly
	StartDate string  `json:"start_date"`
	EndDate   string  `json:"end_date,omitempty"`
}

package models

type Payable struct {
	ID              string     `json:"id"`
	Amount          float64    `json:"amount"`
	Currency        string     `json:"currency"`
	DueDate         string     `json:"due_date,omitempty"`
	IssueDate       string     `json:"issue_date,omitempty"`
	CounterpartName string     `json:"counterpart_name,omitempty"`
	Status          string     `json:"status"` // draft | processing | approved | paid
	DocumentID      string     `json:"document_id,omitempty"`
	LineItems       []LineItem `json:"line_items,omitempty"`
}

type LineItem struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

type CreatePayableRequest struct {
	Amount          float64    `json:"amount"`
	Currency        string     `json:"currency"`
	DueDate         string     `json:"due_date,omitempty"`
	CounterpartName string     `json:"counterpart_name,omitempty"`
	DocumentID      string     `json:"document_id,omitempty"`
	LineItems       []LineItem `json:"line_items,omitempty"`
}

type UpdatePayableRequest struct {
	Amount          float64    `json:"amount,omitempty"`
	Currency        string     `json:"currency,omitempty"`
	DueDate         string     `json:"due_date,omitempty"`
	CounterpartName string     `json:"counterpart_name,omitempty"`
	Status          string     `json:"status,omitempty"`
	LineItems       []LineItem `json:"line_items,omitempty"`
}

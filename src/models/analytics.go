package models

type PaymentAnalytics struct {
	TotalInbound  float64 `json:"total_inbound"`
	TotalOutbound float64 `json:"total_outbound"`
	Currency      string  `json:"currency"`
	PeriodStart   string  `json:"period_start"`
	PeriodEnd     string  `json:"period_end"`
}

type AuditEvent struct {
	ID        string `json:"id"`
	EntityID  string `json:"entity_id"`
	Action    string `json:"action"`
	Actor     string `json:"actor,omitempty"`
	Timestamp string `json:"timestamp"`
}

type Export struct {
	ID     string `json:"id"`
	Type   string `json:"type"`   // payments | invoices | audit
	Format string `json:"format"` // csv | xlsx
	Status string `json:"status"`
}

type CreateExportRequest struct {
	Type      string `json:"type"`
	Format    string `json:"format"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

package monite

import (
	"context"
	"net/http"
	"net/url"

	"wonderpay-server/src/models"
)

type auditTrailResponse struct {
	Data []models.AuditEvent `json:"data"`
}

type PaymentAnalyticsParams struct {
	StartDate string
	EndDate   string
	Type      string // inbound | outbound
}

func (c *Client) GetPaymentAnalytics(ctx context.Context, params PaymentAnalyticsParams) (*models.PaymentAnalytics, error) {
	query := url.Values{}
	query.Set("start_date", params.StartDate)
	query.Set("end_date", params.EndDate)
	if params.Type != "" {
		query.Set("type", params.Type)
	}

	var analytics models.PaymentAnalytics
	if err := c.do(ctx, http.MethodGet, "/analytics/payments", query, nil, &analytics); err != nil {
		return nil, err
	}
	return &analytics, nil
}

type AuditTrailParams struct {
	EntityID  string
	StartDate string
	EndDate   string
}

func (c *Client) GetAuditTrail(ctx context.Context, params AuditTrailParams) ([]models.AuditEvent, error) {
	query := url.Values{}
	query.Set("entity_id", params.EntityID)
	if params.StartDate != "" {
		query.Set("start_date", params.StartDate)
	}
	if params.EndDate != "" {
		query.Set("end_date", params.EndDate)
	}

	var resp auditTrailResponse
	if err := c.do(ctx, http.MethodGet, "/audit_trail", query, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (c *Client) CreateExport(ctx context.Context, req models.CreateExportRequest) (*models.Export, error) {
	var export models.Export
	if err := c.do(ctx, http.MethodPost, "/exports", nil, req, &export); err != nil {
		return nil, err
	}
	return &export, nil
}

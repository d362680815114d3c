package services

import (
	"context"

	"wonderpay-server/src/models"
	"wonderpay-server/src/monite"
	"wonderpay-server/src/notify"
)

// AnalyticsService reads payment analytics and the audit trail, and
// kicks off data exports.
type AnalyticsService struct {
	base
}

func NewAnalyticsService(sessions *monite.SessionManager, notifier notify.Notifier) *AnalyticsService {
	return &AnalyticsService{base: base{sessions: sessions, notifier: notifier}}
}

func (s *AnalyticsService) GetPaymentAnalytics(ctx context.Context, params monite.PaymentAnalyticsParams) (*models.PaymentAnalytics, error) {
	if err := s.requireSession("Analytics service"); err != nil {
		return nil, err
	}
	defer s.begin()()

	client, err := s.client(ctx)
	if err != nil {
		return nil, err
	}

	analytics, err := client.GetPaymentAnalytics(ctx, params)
	if err != nil {
		e := &Error{Kind: KindAnalytics, Message: "Failed to fetch payment analytics", Err: err}
		s.reportError(e.Message)
		return nil, e
	}
	return analytics, nil
}

func (s *AnalyticsService) GetAuditTrail(ctx context.Context, params monite.AuditTrailParams) ([]models.AuditEvent, error) {
	if err := s.requireSession("Analytics service"); err != nil {
		return []models.AuditEvent{}, err
	}
	defer s.begin()()

	client, err := s.client(ctx)
	if err != nil {
		return []models.AuditEvent{}, err
	}

	events, err := client.GetAuditTrail(ctx, params)
	if err != nil {
		e := &Error{Kind: KindAnalytics, Message: "Failed to fetch audit trail", Err: err}
		s.reportError(e.Message)
		return []models.AuditEvent{}, e
	}
	if events == nil {
		events = []models.AuditEvent{}
	}
	return events, nil
}

func (s *AnalyticsService) ExportData(ctx context.Context, req models.CreateExportRequest) (*models.Export, error) {
	if err := s.requireSession("Analytics service"); err != nil {
		return nil, err
	}
	defer s.begin()()

	client, err := s.client(ctx)
	if err != nil {
		return nil, err
	}

	export, err := client.CreateExport(ctx, req)
	if err != nil {
		e := &Error{Kind: KindAnalytics, Message: "Failed to start export", Err: err}
		s.reportError(e.Message)
		return nil, e
	}

	s.reportSuccess("Export started successfully")
	return export, nil
}

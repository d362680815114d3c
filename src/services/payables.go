package services

import (
	"context"

	"wonderpay-server/src/models"
	"wonderpay-server/src/monite"
	"wonderpay-server/src/notify"
)

// PayablesService manages bills. Drafts edited in the dashboard live in
// component state until saved here; the vendor owns the authoritative
// status.
type PayablesService struct {
	base
}

func NewPayablesService(sessions *monite.SessionManager, notifier notify.Notifier) *PayablesService {
	return &PayablesService{base: base{sessions: sessions, notifier: notifier}}
}

func (s *PayablesService) Create(ctx context.Context, req models.CreatePayableRequest) (*models.Payable, error) {
	if err := s.requireSession("Payables service"); err != nil {
		return nil, err
	}
	defer s.begin()()

	client, err := s.client(ctx)
	if err != nil {
		return nil, err
	}

	payable, err := client.CreatePayable(ctx, req)
	if err != nil {
		e := &Error{Kind: KindPayables, Message: describe(err, "Failed to create payable"), Err: err}
		s.reportError(e.Message)
		return nil, e
	}
	return payable, nil
}

func (s *PayablesService) List(ctx context.Context, params monite.PayableListParams) ([]models.Payable, error) {
	if err := s.requireSession("Payables service"); err != nil {
		return []models.Payable{}, err
	}
	defer s.begin()()

	client, err := s.client(ctx)
	if err != nil {
		return []models.Payable{}, err
	}

	payables, err := client.ListPayables(ctx, params)
	if err != nil {
		e := &Error{Kind: KindPayables, Message: "Failed to fetch payables", Err: err}
		s.reportError(e.Message)
		return []models.Payable{}, e
	}
	if payables == nil {
		payables = []models.Payable{}
	}
	return payables, nil
}

func (s *PayablesService) GetByID(ctx context.Context, id string) (*models.Payable, error) {
	if err := s.requireSession("Payables service"); err != nil {
		return nil, err
	}
	defer s.begin()()

	client, err := s.client(ctx)
	if err != nil {
		return nil, err
	}

	payable, err := client.GetPayable(ctx, id)
	if err != nil {
		e := &Error{Kind: KindPayables, Message: "Failed to fetch payable", Err: err}
		s.reportError(e.Message)
		return nil, e
	}
	return payable, nil
}

func (s *PayablesService) Update(ctx context.Context, id string, req models.UpdatePayableRequest) (*models.Payable, error) {
	if err := s.requireSession("Payables service"); err != nil {
		return nil, err
	}
	defer s.begin()()

	client, err := s.client(ctx)
	if err != nil {
		return nil, err
	}

	payable, err := client.UpdatePayable(ctx, id, req)
	if err != nil {
		e := &Error{Kind: KindPayables, Message: "Failed to update payable", Err: err}
		s.reportError(e.Message)
		return nil, e
	}
	return payable, nil
}

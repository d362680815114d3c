package services

import (
	"context"

	"wonderpay-server/src/models"
	"wonderpay-server/src/monite"
	"wonderpay-server/src/notify"
)

// CounterpartsService manages clients and vendors ("contacts" in the
// dashboard).
type CounterpartsService struct {
	base
}

func NewCounterpartsService(sessions *monite.SessionManager, notifier notify.Notifier) *CounterpartsService {
	return &CounterpartsService{base: base{sessions: sessions, notifier: notifier}}
}

func (s *CounterpartsService) Create(ctx context.Context, req models.CreateCounterpartRequest) (*models.Counterpart, error) {
	if err := s.requireSession("Counterparts service"); err != nil {
		return nil, err
	}
	defer s.begin()()

	client, err := s.client(ctx)
	if err != nil {
		return nil, err
	}

	counterpart, err := client.CreateCounterpart(ctx, req)
	if err != nil {
		e := &Error{Kind: KindCounterparts, Message: describe(err, "Failed to add contact"), Err: err}
		s.reportError(e.Message)
		return nil, e
	}

	s.reportSuccess("Contact added successfully")
	return counterpart, nil
}

func (s *CounterpartsService) List(ctx context.Context, params monite.CounterpartListParams) ([]models.Counterpart, error) {
	if err := s.requireSession("Counterparts service"); err != nil {
		return []models.Counterpart{}, err
	}
	defer s.begin()()

	client, err := s.client(ctx)
	if err != nil {
		return []models.Counterpart{}, err
	}

	counterparts, err := client.ListCounterparts(ctx, params)
	if err != nil {
		e := &Error{Kind: KindCounterparts, Message: "Failed to fetch contacts", Err: err}
		s.reportError(e.Message)
		return []models.Counterpart{}, e
	}
	if counterparts == nil {
		counterparts = []models.Counterpart{}
	}
	return counterparts, nil
}

func (s *CounterpartsService) Update(ctx context.Context, id string, req models.UpdateCounterpartRequest) (*models.Counterpart, error) {
	if err := s.requireSession("Counterparts service"); err != nil {
		return nil, err
	}
	defer s.begin()()

	client, err := s.client(ctx)
	if err != nil {
		return nil, err
	}

	counterpart, err := client.UpdateCounterpart(ctx, id, req)
	if err != nil {
		e := &Error{Kind: KindCounterparts, Message: "Failed to update contact", Err: err}
		s.reportError(e.Message)
		return nil, e
	}

	s.reportSuccess("Contact updated successfully")
	return counterpart, nil
}

func (s *CounterpartsService) Remove(ctx context.Context, id string) (bool, error) {
	if err := s.requireSession("Counterparts service"); err != nil {
		return false, err
	}
	defer s.begin()()

	client, err := s.client(ctx)
	if err != nil {
		return false, err
	}

	if err := client.DeleteCounterpart(ctx, id); err != nil {
		e := &Error{Kind: KindCounterparts, Message: "Failed to remove contact", Err: err}
		s.reportError(e.Message)
		return false, e
	}

	s.reportSuccess("Contact removed successfully")
	return true, nil
}

func (s *CounterpartsService) GetByID(ctx context.Context, id string) (*models.Counterpart, error) {
	if err := s.requireSession("Counterparts service"); err != nil {
		return nil, err
	}
	defer s.begin()()

	client, err := s.client(ctx)
	if err != nil {
		return nil, err
	}

	counterpart, err := client.GetCounterpart(ctx, id)
	if err != nil {
		e := &Error{Kind: KindCounterparts, Message: "Failed to fetch contact details", Err: err}
		s.reportError(e.Message)
		return nil, e
	}
	return counterpart, nil
}

package services

import (
	"context"

	"wonderpay-server/src/models"
	"wonderpay-server/src/monite"
	"wonderpay-server/src/notify"
)

// EntityService reads and updates the business entity's own settings.
type EntityService struct {
	base
}

func NewEntityService(sessions *monite.SessionManager, notifier notify.Notifier) *EntityService {
	return &EntityService{base: base{sessions: sessions, notifier: notifier}}
}

func (s *EntityService) Get(ctx context.Context) (*models.Entity, error) {
	if err := s.requireSession("Entity service"); err != nil {
		return nil, err
	}
	defer s.begin()()

	client, err := s.client(ctx)
	if err != nil {
		return nil, err
	}

	entity, err := client.GetEntity(ctx)
	if err != nil {
		e := &Error{Kind: KindEntity, Message: "Failed to fetch entity details", Err: err}
		s.reportError(e.Message)
		return nil, e
	}
	return entity, nil
}

func (s *EntityService) Update(ctx context.Context, req models.UpdateEntityRequest) (*models.Entity, error) {
	if err := s.requireSession("Entity service"); err != nil {
		return nil, err
	}
	defer s.begin()()

	client, err := s.client(ctx)
	if err != nil {
		return nil, err
	}

	entity, err := client.UpdateEntity(ctx, req)
	if err != nil {
		e := &Error{Kind: KindEntity, Message: "Failed to update entity settings", Err: err}
		s.reportError(e.Message)
		return nil, e
	}
	return entity, nil
}

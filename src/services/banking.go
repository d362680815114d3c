package services

import (
	"context"

	"wonderpay-server/src/models"
	"wonderpay-server/src/monite"
	"wonderpay-server/src/notify"
)

// BankingService manages bank accounts through the vendor API. All
// failures surface as a sentinel value plus one notification.
type BankingService struct {
	base
}

func NewBankingService(sessions *monite.SessionManager, notifier notify.Notifier) *BankingService {
	return &BankingService{base: base{sessions: sessions, notifier: notifier}}
}

func (s *BankingService) Create(ctx context.Context, req models.CreateBankAccountRequest) (*models.BankAccount, error) {
	if err := s.requireSession("Banking service"); err != nil {
		return nil, err
	}
	defer s.begin()()

	client, err := s.client(ctx)
	if err != nil {
		return nil, err
	}

	account, err := client.CreateBankAccount(ctx, req)
	if err != nil {
		e := &Error{Kind: KindBanking, Message: describe(err, "Failed to add bank account"), Err: err}
		s.reportError(e.Message)
		return nil, e
	}

	s.reportSuccess("Bank account added successfully")
	return account, nil
}

func (s *BankingService) List(ctx context.Context) ([]models.BankAccount, error) {
	if err := s.requireSession("Banking service"); err != nil {
		return []models.BankAccount{}, err
	}
	defer s.begin()()

	client, err := s.client(ctx)
	if err != nil {
		return []models.BankAccount{}, err
	}

	accounts, err := client.ListBankAccounts(ctx)
	if err != nil {
		e := &Error{Kind: KindBanking, Message: "Failed to fetch bank accounts", Err: err}
		s.reportError(e.Message)
		return []models.BankAccount{}, e
	}
	if accounts == nil {
		accounts = []models.BankAccount{}
	}
	return accounts, nil
}

func (s *BankingService) GetByID(ctx context.Context, id string) (*models.BankAccount, error) {
	if err := s.requireSession("Banking service"); err != nil {
		return nil, err
	}
	defer s.begin()()

	client, err := s.client(ctx)
	if err != nil {
		return nil, err
	}

	account, err := client.GetBankAccount(ctx, id)
	if err != nil {
		e := &Error{Kind: KindBanking, Message: "Failed to fetch bank account", Err: err}
		s.reportError(e.Message)
		return nil, e
	}
	return account, nil
}

func (s *BankingService) Remove(ctx context.Context, id string) (bool, error) {
	if err := s.requireSession("Banking service"); err != nil {
		return false, err
	}
	defer s.begin()()

	client, err := s.client(ctx)
	if err != nil {
		return false, err
	}

	if err := client.DeleteBankAccount(ctx, id); err != nil {
		e := &Error{Kind: KindBanking, Message: "Failed to remove bank account", Err: err}
		s.reportError(e.Message)
		return false, e
	}

	s.reportSuccess("Bank account removed successfully")
	return true, nil
}

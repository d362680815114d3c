package services

import (
	"context"
	"fmt"
	"time"

	"wonderpay-server/src/models"
	"wonderpay-server/src/monite"
	"wonderpay-server/src/notify"
)

// wonderFlexTerms splits a payment into three monthly installments with
// a third due up front.
var wonderFlexTerms = models.PaymentTerms{
	Installments:           3,
	Interval:               "month",
	FirstPaymentPercentage: 33.33,
}

// PaymentsService creates and processes payment intents.
type PaymentsService struct {
	base
}

func NewPaymentsService(sessions *monite.SessionManager, notifier notify.Notifier) *PaymentsService {
	return &PaymentsService{base: base{sessions: sessions, notifier: notifier}}
}

type SubmitPaymentRequest struct {
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	Method        string  `json:"method"` // ach | card | wire
	PayableID     string  `json:"payable_id,omitempty"`
	BankAccountID string  `json:"bank_account_id,omitempty"`
	WonderFlex    bool    `json:"wonderflex,omitempty"`
}

// SubmitPayment runs the whole submit-time decision tree: method
// selected, ACH backed by a verified bank account, method available
// remotely, then create-intent followed immediately by process-intent.
// Neither remote step is retried; the first failure is terminal.
func (s *PaymentsService) SubmitPayment(ctx context.Context, req SubmitPaymentRequest) (*models.PaymentIntent, error) {
	if err := s.requireSession("Payment service"); err != nil {
		return nil, err
	}
	defer s.begin()()

	if req.Method == "" {
		e := &Error{Kind: KindValidation, Message: "Please select a payment method"}
		s.reportError(e.Message)
		return nil, e
	}
	if req.Method == "ach" && req.BankAccountID == "" {
		e := &Error{Kind: KindValidation, Message: "Please select a bank account"}
		s.reportError(e.Message)
		return nil, e
	}

	client, err := s.client(ctx)
	if err != nil {
		return nil, err
	}

	if req.Method == "ach" {
		if err := client.VerifyBankAccount(ctx, req.BankAccountID); err != nil {
			e := &Error{Kind: KindPayments, Message: "Bank account verification failed", Err: err}
			s.reportError(e.Message)
			return nil, e
		}
	}

	available, err := s.methodAvailable(ctx, client, req.Method)
	if err != nil || !available {
		e := &Error{Kind: KindPayments, Message: "Selected payment method is not available", Err: err}
		s.reportError(e.Message)
		return nil, e
	}

	var terms *models.PaymentTerms
	if req.WonderFlex {
		t := wonderFlexTerms
		terms = &t
	}

	intent, err := client.CreatePaymentIntent(ctx, models.CreatePaymentIntentRequest{
		Amount:        req.Amount,
		Currency:      req.Currency,
		Method:        req.Method,
		PayableID:     req.PayableID,
		BankAccountID: req.BankAccountID,
		PaymentTerms:  terms,
	})
	if err != nil {
		e := &Error{Kind: KindPayments, Message: describe(err, "Payment processing failed"), Err: err}
		s.reportError(e.Message)
		return nil, e
	}

	result, err := client.ProcessPaymentIntent(ctx, intent.ID)
	if err != nil {
		e := &Error{Kind: KindPayments, Message: describe(err, "Payment processing failed"), Err: err}
		s.reportError(e.Message)
		return nil, e
	}

	s.reportSuccess("Payment processed successfully")
	return result, nil
}

func (s *PaymentsService) methodAvailable(ctx context.Context, client *monite.Client, method string) (bool, error) {
	methods, err := client.ListPaymentMethods(ctx)
	if err != nil {
		return false, err
	}
	for _, m := range methods {
		if m.Type == method && m.Status == "active" {
			return true, nil
		}
	}
	return false, nil
}

// GetMethods returns the active payment methods.
func (s *PaymentsService) GetMethods(ctx context.Context) ([]models.PaymentMethod, error) {
	if err := s.requireSession("Payment service"); err != nil {
		return []models.PaymentMethod{}, err
	}
	defer s.begin()()

	client, err := s.client(ctx)
	if err != nil {
		return []models.PaymentMethod{}, err
	}

	methods, err := client.ListPaymentMethods(ctx)
	if err != nil {
		e := &Error{Kind: KindPayments, Message: "Failed to fetch payment methods", Err: err}
		s.reportError(e.Message)
		return []models.PaymentMethod{}, e
	}

	active := make([]models.PaymentMethod, 0, len(methods))
	for _, m := range methods {
		if m.Status == "active" {
			active = append(active, m)
		}
	}
	return active, nil
}

func (s *PaymentsService) VerifyBankAccount(ctx context.Context, bankAccountID string) (bool, error) {
	if err := s.requireSession("Payment service"); err != nil {
		return false, err
	}
	defer s.begin()()

	client, err := s.client(ctx)
	if err != nil {
		return false, err
	}

	if err := client.VerifyBankAccount(ctx, bankAccountID); err != nil {
		e := &Error{Kind: KindPayments, Message: "Bank account verification failed", Err: err}
		s.reportError(e.Message)
		return false, e
	}

	s.reportSuccess("Bank account verified successfully")
	return true, nil
}

func (s *PaymentsService) SchedulePayment(ctx context.Context, intentID string, date time.Time) (bool, error) {
	if err := s.requireSession("Payment service"); err != nil {
		return false, err
	}
	defer s.begin()()

	client, err := s.client(ctx)
	if err != nil {
		return false, err
	}

	if err := client.SchedulePaymentIntent(ctx, intentID, date.UTC().Format(time.RFC3339)); err != nil {
		e := &Error{Kind: KindPayments, Message: "Failed to schedule payment", Err: err}
		s.reportError(e.Message)
		return false, e
	}

	s.reportSuccess("Payment scheduled successfully")
	return true, nil
}

func (s *PaymentsService) CreateRecurringPayment(ctx context.Context, req models.RecurringPaymentRequest) (bool, error) {
	if err := s.requireSession("Payment service"); err != nil {
		return false, err
	}
	defer s.begin()()

	if req.Method != "ach" && req.Method != "card" {
		e := &Error{Kind: KindValidation, Message: fmt.Sprintf("Recurring payments do not support the %s method", req.Method)}
		s.reportError(e.Message)
		return false, e
	}

	client, err := s.client(ctx)
	if err != nil {
		return false, err
	}

	if err := client.CreateRecurringPayment(ctx, req); err != nil {
		e := &Error{Kind: KindPayments, Message: "Failed to create recurring payment", Err: err}
		s.reportError(e.Message)
		return false, e
	}

	s.reportSuccess("Recurring payment created successfully")
	return true, nil
}

package monite

import (
	"context"
	"net/http"

	"wonderpay-server/src/models"
)

type paymentMethodsResponse struct {
	Data []models.PaymentMethod `json:"data"`
}

func (c *Client) ListPaymentMethods(ctx context.Context) ([]models.PaymentMethod, error) {
	var resp paymentMethodsResponse
	if err := c.do(ctx, http.MethodGet, "/payment_methods", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (c *Client) CreatePaymentIntent(ctx context.Context, req models.CreatePaymentIntentRequest) (*models.PaymentIntent, error) {
	var intent models.PaymentIntent
	if err := c.do(ctx, http.MethodPost, "/payment_intents", nil, req, &intent); err != nil {
		return nil, err
	}
	return &intent, nil
}

func (c *Client) ProcessPaymentIntent(ctx context.Context, id string) (*models.PaymentIntent, error) {
	var intent models.PaymentIntent
	if err := c.do(ctx, http.MethodPost, "/payment_intents/"+id+"/process", nil, nil, &intent); err != nil {
		return nil, err
	}
	return &intent, nil
}

func (c *Client) SchedulePaymentIntent(ctx context.Context, id, scheduledDate string) error {
	body := map[string]string{"scheduled_date": scheduledDate}
	return c.do(ctx, http.MethodPost, "/payment_intents/"+id+"/schedule", nil, body, nil)
}

func (c *Client) CreateRecurringPayment(ctx context.Context, req models.RecurringPaymentRequest) error {
	return c.do(ctx, http.MethodPost, "/recurring_payments", nil, req, nil)
}

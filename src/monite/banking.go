package monite

import (
	"context"
	"net/http"

	"wonderpay-server/src/models"
)

type bankAccountsResponse struct {
	Data []models.BankAccount `json:"data"`
}

func (c *Client) CreateBankAccount(ctx context.Context, req models.CreateBankAccountRequest) (*models.BankAccount, error) {
	var account models.BankAccount
	if err := c.do(ctx, http.MethodPost, "/bank_accounts", nil, req, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

func (c *Client) ListBankAccounts(ctx context.Context) ([]models.BankAccount, error) {
	var resp bankAccountsResponse
	if err := c.do(ctx, http.MethodGet, "/bank_accounts", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (c *Client) GetBankAccount(ctx context.Context, id string) (*models.BankAccount, error) {
	var account models.BankAccount
	if err := c.do(ctx, http.MethodGet, "/bank_accounts/"+id, nil, nil, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

func (c *Client) DeleteBankAccount(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/bank_accounts/"+id, nil, nil, nil)
}

// VerifyBankAccount runs the remote verification step. The account's
// status transitions to verified only on the vendor side.
func (c *Client) VerifyBankAccount(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPost, "/bank_accounts/"+id+"/verify", nil, nil, nil)
}

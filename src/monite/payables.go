package monite

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"wonderpay-server/src/models"
)

type payablesResponse struct {
	Data []models.Payable `json:"data"`
}

type PayableListParams struct {
	Limit  int
	Offset int
	Status string
}

func (c *Client) CreatePayable(ctx context.Context, req models.CreatePayableRequest) (*models.Payable, error) {
	var payable models.Payable
	if err := c.do(ctx, http.MethodPost, "/payables", nil, req, &payable); err != nil {
		return nil, err
	}
	return &payable, nil
}

func (c *Client) ListPayables(ctx context.Context, params PayableListParams) ([]models.Payable, error) {
	query := url.Values{}
	if params.Limit > 0 {
		query.Set("limit", strconv.Itoa(params.Limit))
	}
	if params.Offset > 0 {
		query.Set("offset", strconv.Itoa(params.Offset))
	}
	if params.Status != "" {
		query.Set("status", params.Status)
	}

	var resp payablesResponse
	if err := c.do(ctx, http.MethodGet, "/payables", query, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (c *Client) GetPayable(ctx context.Context, id string) (*models.Payable, error) {
	var payable models.Payable
	if err := c.do(ctx, http.MethodGet, "/payables/"+id, nil, nil, &payable); err != nil {
		return nil, err
	}
	return &payable, nil
}

func (c *Client) UpdatePayable(ctx context.Context, id string, req models.UpdatePayableRequest) (*models.Payable, error) {
	var payable models.Payable
	if err := c.do(ctx, http.MethodPatch, "/payables/"+id, nil, req, &payable); err != nil {
		return nil, err
	}
	return &payable, nil
}

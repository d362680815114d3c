package monite

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"wonderpay-server/src/models"
)

type counterpartsResponse struct {
	Data []models.Counterpart `json:"data"`
}

// CounterpartListParams narrows a counterpart listing. Zero values are
// omitted from the query.
type CounterpartListParams struct {
	Limit  int
	Offset int
	Type   string // individual | organization
}

func (c *Client) CreateCounterpart(ctx context.Context, req models.CreateCounterpartRequest) (*models.Counterpart, error) {
	var counterpart models.Counterpart
	if err := c.do(ctx, http.MethodPost, "/counterparts", nil, req, &counterpart); err != nil {
		return nil, err
	}
	return &counterpart, nil
}

func (c *Client) ListCounterparts(ctx context.Context, params CounterpartListParams) ([]models.Counterpart, error) {
	query := url.Values{}
	if params.Limit > 0 {
		query.Set("limit", strconv.Itoa(params.Limit))
	}
	if params.Offset > 0 {
		query.Set("offset", strconv.Itoa(params.Offset))
	}
	if params.Type != "" {
		query.Set("type", params.Type)
	}

	var resp counterpartsResponse
	if err := c.do(ctx, http.MethodGet, "/counterparts", query, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (c *Client) GetCounterpart(ctx context.Context, id string) (*models.Counterpart, error) {
	var counterpart models.Counterpart
	if err := c.do(ctx, http.MethodGet, "/counterparts/"+id, nil, nil, &counterpart); err != nil {
		return nil, err
	}
	return &counterpart, nil
}

func (c *Client) UpdateCounterpart(ctx context.Context, id string, req models.UpdateCounterpartRequest) (*models.Counterpart, error) {
	var counterpart models.Counterpart
	if err := c.do(ctx, http.MethodPatch, "/counterparts/"+id, nil, req, &counterpart); err != nil {
		return nil, err
	}
	return &counterpart, nil
}

func (c *Client) DeleteCounterpart(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/counterparts/"+id, nil, nil, nil)
}

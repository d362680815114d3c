package monite

import (
	"context"
	"net/http"

	"wonderpay-server/src/models"
)

func (c *Client) GetEntity(ctx context.Context) (*models.Entity, error) {
	var entity models.Entity
	if err := c.do(ctx, http.MethodGet, "/entities/"+c.cfg.EntityID, nil, nil, &entity); err != nil {
		return nil, err
	}
	return &entity, nil
}

func (c *Client) UpdateEntity(ctx context.Context, req models.UpdateEntityRequest) (*models.Entity, error) {
	var entity models.Entity
	if err := c.do(ctx, http.MethodPatch, "/entities/"+c.cfg.EntityID, nil, req, &entity); err != nil {
		return nil, err
	}
	return &entity, nil
}

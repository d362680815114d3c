package monite

import (
	"context"
	"net/http"

	"wonderpay-server/src/models"
)

type workflowsResponse struct {
	Data []models.Workflow `json:"data"`
}

func (c *Client) CreateWorkflow(ctx context.Context, req models.CreateWorkflowRequest) (*models.Workflow, error) {
	var workflow models.Workflow
	if err := c.do(ctx, http.MethodPost, "/workflows", nil, req, &workflow); err != nil {
		return nil, err
	}
	return &workflow, nil
}

func (c *Client) ListWorkflows(ctx context.Context) ([]models.Workflow, error) {
	var resp workflowsResponse
	if err := c.do(ctx, http.MethodGet, "/workflows", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (c *Client) UpdateWorkflowStatus(ctx context.Context, id string, req models.UpdateWorkflowStatusRequest) error {
	return c.do(ctx, http.MethodPost, "/workflows/"+id+"/status", nil, req, nil)
}

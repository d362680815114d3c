package services

import (
	"context"
	"fmt"

	"wonderpay-server/src/models"
	"wonderpay-server/src/monite"
	"wonderpay-server/src/notify"
)

// WorkflowsService manages bill approval workflows.
type WorkflowsService struct {
	base
}

func NewWorkflowsService(sessions *monite.SessionManager, notifier notify.Notifier) *WorkflowsService {
	return &WorkflowsService{base: base{sessions: sessions, notifier: notifier}}
}

func (s *WorkflowsService) CreateApprovalWorkflow(ctx context.Context, name string, steps []models.WorkflowStep) (*models.Workflow, error) {
	if err := s.requireSession("Workflows service"); err != nil {
		return nil, err
	}
	defer s.begin()()

	client, err := s.client(ctx)
	if err != nil {
		return nil, err
	}

	workflow, err := client.CreateWorkflow(ctx, models.CreateWorkflowRequest{
		Name:  name,
		Type:  "approval",
		Steps: steps,
	})
	if err != nil {
		e := &Error{Kind: KindWorkflows, Message: "Failed to create approval workflow", Err: err}
		s.reportError(e.Message)
		return nil, e
	}

	s.reportSuccess("Approval workflow created successfully")
	return workflow, nil
}

func (s *WorkflowsService) List(ctx context.Context) ([]models.Workflow, error) {
	if err := s.requireSession("Workflows service"); err != nil {
		return []models.Workflow{}, err
	}
	defer s.begin()()

	client, err := s.client(ctx)
	if err != nil {
		return []models.Workflow{}, err
	}

	workflows, err := client.ListWorkflows(ctx)
	if err != nil {
		e := &Error{Kind: KindWorkflows, Message: "Failed to fetch workflows", Err: err}
		s.reportError(e.Message)
		return []models.Workflow{}, e
	}
	if workflows == nil {
		workflows = []models.Workflow{}
	}
	return workflows, nil
}

// UpdateStatus approves or rejects a workflow.
func (s *WorkflowsService) UpdateStatus(ctx context.Context, id, status, comment string) (bool, error) {
	if err := s.requireSession("Workflows service"); err != nil {
		return false, err
	}
	defer s.begin()()

	if status != "approved" && status != "rejected" {
		e := &Error{Kind: KindValidation, Message: fmt.Sprintf("Invalid workflow status %q", status)}
		s.reportError(e.Message)
		return false, e
	}

	client, err := s.client(ctx)
	if err != nil {
		return false, err
	}

	if err := client.UpdateWorkflowStatus(ctx, id, models.UpdateWorkflowStatusRequest{Status: status, Comment: comment}); err != nil {
		e := &Error{Kind: KindWorkflows, Message: "Failed to update workflow status", Err: err}
		s.reportError(e.Message)
		return false, e
	}

	s.reportSuccess(fmt.Sprintf("Workflow %s successfully", status))
	return true, nil
}

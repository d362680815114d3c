package models

type Workflow struct {
	ID     string         `json:"id"`
	Name   string         `json:"name"`
	Type   string         `json:"type"` // approval
	Status string         `json:"status,omitempty"`
	Steps  []WorkflowStep `json:"steps"`
}

type WorkflowStep struct {
	Type      string   `json:"type"` // approval | notification
	Approvers []string `json:"approvers,omitempty"`
	Threshold float64  `json:"threshold,omitempty"`
}

type CreateWorkflowRequest struct {
	Name  string         `json:"name"`
	Type  string         `json:"type"`
	Steps []WorkflowStep `json:"steps"`
}

type UpdateWorkflowStatusRequest struct {
	Status  string `json:"status"` // approved | rejected
	Comment string `json:"comment,omitempty"`
}

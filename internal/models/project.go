package models

// Project statuses. Only the pending → in_progress transition is driven by
// this system (as a side effect of accepting a proposal); completed and
// cancelled exist for the views.
const (
	ProjectPending    = "pending"
	ProjectInProgress = "in_progress"
	ProjectCompleted  = "completed"
	ProjectCancelled  = "cancelled"
)

// Project is a customer-submitted engagement request.
type Project struct {
	ID                 int64    `json:"id"`
	Name               string   `json:"name"`
	Budget             string   `json:"budget"`
	Description        string   `json:"description"`
	Timeline           string   `json:"timeline"`
	Goals              string   `json:"goals"`
	Status             string   `json:"status"`
	CustomerID         int64    `json:"customerId"`
	CreatedAt          string   `json:"createdAt"`
	AcceptedProposalID int64    `json:"acceptedProposalId,omitempty"`
	Files              []string `json:"files,omitempty"`
}

package models

// Proposal statuses.
const (
	ProposalPending  = "pending"
	ProposalAccepted = "accepted"
	ProposalRejected = "rejected"
)

// Proposal is an admin's offer against a project. The UI expects at most one
// proposal per (projectId, adminId) pair; nothing enforces that server-side.
type Proposal struct {
	ID           int64    `json:"id"`
	ProjectID    int64    `json:"projectId"`
	AdminID      int64    `json:"adminId"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Price        float64  `json:"price"`
	Timeline     string   `json:"timeline"`
	Deliverables []string `json:"deliverables"`
	Status       string   `json:"status"`
	CreatedAt    string   `json:"createdAt"`
}
